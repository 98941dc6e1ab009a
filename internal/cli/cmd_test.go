package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/chronos/internal/catalog"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/generation"
	"github.com/alexanderramin/chronos/internal/geo"
	"github.com/alexanderramin/chronos/internal/intelligence"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/alexanderramin/chronos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB. No credential is
// configured, so generation is always procedural.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	generator := generation.NewGenerator(catalog.Default())
	seeded := func(seed int64) intelligence.ScenarioService {
		return intelligence.NewScenarioService(nil, generator, "", generation.NewSource(seed), nil)
	}
	return &App{
		Scenarios:       seeded(1),
		SeededScenarios: seeded,
		Library: service.NewScenarioLibrary(
			repository.NewSQLiteScenarioRepo(database),
			testutil.NewTestUoW(database),
		),
		ClusterThreshold: geo.DefaultThreshold,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedScenario(t *testing.T, app *App, name string, opts ...testutil.ScenarioOption) *domain.SavedScenario {
	t.Helper()
	s := testutil.NewTestScenario(name, opts...)
	saved, err := app.Library.Save(context.Background(), s.GenerationResult, &s.Input)
	require.NoError(t, err)
	return saved
}

func TestGenerate_JSONWhenNotTerminal(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "generate", "--name", "Ash Line", "--region", "Asia", "--events", "5")
	require.NoError(t, err)

	var result domain.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Ash Line", result.ScenarioName)
	assert.Len(t, result.Events, 5)
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	app := testApp(t)
	args := []string{"generate", "--name", "Echo", "--events", "6", "--seed", "99"}

	first, err := executeCmd(t, app, args...)
	require.NoError(t, err)
	second, err := executeCmd(t, app, args...)
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestGenerate_Styled(t *testing.T) {
	app := testApp(t)
	app.IsTerminal = func() bool { return true }

	out, err := executeCmd(t, app, "generate", "--name", "Ash Line", "--events", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Ash Line")
	assert.Contains(t, out, "TIMELINE")
	assert.Contains(t, out, "PROCEDURAL")
}

func TestGenerate_Save(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "generate", "--name", "Kept", "--events", "3", "--save")
	require.NoError(t, err)
	var saved domain.SavedScenario
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, "Kept", saved.Input.Name)

	list, err := app.Library.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "generate", "--name", "x", "--events", "0")
	assert.ErrorContains(t, err, "eventCount")

	_, err = executeCmd(t, app, "generate", "--name", "x", "--region", "Atlantis")
	assert.ErrorContains(t, err, "Atlantis")

	_, err = executeCmd(t, app, "generate")
	assert.ErrorContains(t, err, "name")
}

func TestScenarioListShowDelete(t *testing.T) {
	app := testApp(t)
	saved := seedScenario(t, app, "Glass Sea")

	out, err := executeCmd(t, app, "scenario", "list")
	require.NoError(t, err)
	var list []domain.SavedScenario
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)

	app.IsTerminal = func() bool { return true }
	out, err = executeCmd(t, app, "scenario", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Glass Sea")
	assert.Contains(t, out, saved.ID[:8])

	out, err = executeCmd(t, app, "scenario", "show", saved.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Opening")

	out, err = executeCmd(t, app, "scenario", "delete", saved.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	_, err = executeCmd(t, app, "scenario", "show", saved.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScenarioList_EmptyStyled(t *testing.T) {
	app := testApp(t)
	app.IsTerminal = func() bool { return true }
	out, err := executeCmd(t, app, "scenario", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved scenarios.")
}

func TestScenarioExportImport(t *testing.T) {
	app := testApp(t)
	saved := seedScenario(t, app, "Red Harbor")
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := executeCmd(t, app, "scenario", "export", saved.ID, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenarioName": "Red Harbor"`)

	out, err = executeCmd(t, app, "scenario", "export", saved.ID, "-o", "-")
	require.NoError(t, err)
	assert.JSONEq(t, string(data), out)

	_, err = executeCmd(t, app, "scenario", "delete", saved.ID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "scenario", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, saved.ID)
	assert.Contains(t, out, "3 events")
}

func TestScenarioImport_Invalid(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"events": []}`), 0o644))

	_, err := executeCmd(t, app, "scenario", "import", path)
	assert.ErrorContains(t, err, "scenarioName")
}

func TestClustersCmd(t *testing.T) {
	app := testApp(t)
	saved := seedScenario(t, app, "Twin Cities", testutil.WithEvents(
		testutil.NewTestEvent("North Gate", 10, 10),
		testutil.NewTestEvent("South Gate", 10.5, 10.5),
		testutil.NewTestEvent("Far Shore", -40, 150),
	))

	out, err := executeCmd(t, app, "clusters", saved.ID)
	require.NoError(t, err)
	var clusters []geo.Cluster
	require.NoError(t, json.Unmarshal([]byte(out), &clusters))
	assert.Len(t, clusters, 2)

	out, err = executeCmd(t, app, "clusters", saved.ID, "--threshold", "0.1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &clusters))
	assert.Len(t, clusters, 3)

	app.IsTerminal = func() bool { return true }
	out, err = executeCmd(t, app, "clusters", saved.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "2 EVENTS IN REGION")
	assert.Contains(t, out, "FAR SHORE SITE")
}

func TestClustersCmd_RejectsBadThreshold(t *testing.T) {
	app := testApp(t)
	saved := seedScenario(t, app, "Twin Cities")

	for _, bad := range []string{"NaN", "0", "-3", "+Inf"} {
		_, err := executeCmd(t, app, "clusters", saved.ID, "--threshold="+bad)
		require.Error(t, err, "threshold %s", bad)
		assert.Contains(t, err.Error(), "--threshold must be a positive number")
	}
}
