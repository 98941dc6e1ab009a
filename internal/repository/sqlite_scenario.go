package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
)

// SQLiteScenarioRepo implements ScenarioRepo using a SQLite database.
// Save issues several statements; wrap it in a UnitOfWork for atomicity.
type SQLiteScenarioRepo struct {
	db db.DBTX
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: conn}
}

const scenarioColumns = `id, scenario_name, overview, saved_at, source,
	input_name, input_description, input_region, input_context,
	input_event_count, input_start_year, input_end_year`

const eventColumns = `scenario_id, event_id, date_label, title, description,
	strategic_impact, factions_json, location, latitude, longitude`

func (r *SQLiteScenarioRepo) Save(ctx context.Context, s *domain.SavedScenario) error {
	query := `INSERT INTO saved_scenarios (` + scenarioColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			scenario_name = excluded.scenario_name,
			overview = excluded.overview,
			saved_at = excluded.saved_at,
			source = excluded.source,
			input_name = excluded.input_name,
			input_description = excluded.input_description,
			input_region = excluded.input_region,
			input_context = excluded.input_context,
			input_event_count = excluded.input_event_count,
			input_start_year = excluded.input_start_year,
			input_end_year = excluded.input_end_year`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ScenarioName,
		s.Overview,
		s.Timestamp,
		string(s.Source),
		s.Input.Name,
		s.Input.Description,
		string(s.Input.Region),
		s.Input.AdditionalContext,
		s.Input.EventCount,
		s.Input.StartYear,
		s.Input.EndYear,
	)
	if err != nil {
		return fmt.Errorf("inserting saved scenario: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenario_events WHERE scenario_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing scenario events: %w", err)
	}

	eventQuery := `INSERT INTO scenario_events (position, ` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, e := range s.Events {
		factions, err := encodeFactions(e.FactionsInvolved)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, eventQuery,
			i,
			s.ID,
			e.ID,
			e.Date,
			e.Title,
			e.Description,
			e.StrategicImpact,
			factions,
			e.Location,
			e.Latitude,
			e.Longitude,
		)
		if err != nil {
			return fmt.Errorf("inserting scenario event %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.SavedScenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM saved_scenarios WHERE id = ?`
	s, err := scanScenario(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("saved scenario %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning saved scenario: %w", err)
	}

	events, err := r.loadEvents(ctx, `WHERE scenario_id = ?`, id)
	if err != nil {
		return nil, err
	}
	s.Events = events[id]
	if s.Events == nil {
		s.Events = []domain.WarEvent{}
	}
	return s, nil
}

func (r *SQLiteScenarioRepo) List(ctx context.Context) ([]*domain.SavedScenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM saved_scenarios ORDER BY saved_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing saved scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*domain.SavedScenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning saved scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved scenarios: %w", err)
	}
	rows.Close()

	events, err := r.loadEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, s := range scenarios {
		s.Events = events[s.ID]
		if s.Events == nil {
			s.Events = []domain.WarEvent{}
		}
	}
	return scenarios, nil
}

func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting saved scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting saved scenario: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("saved scenario %s: %w", id, ErrNotFound)
	}
	return nil
}

// loadEvents returns events grouped by scenario id, each group in stored order.
func (r *SQLiteScenarioRepo) loadEvents(ctx context.Context, where string, args ...any) (map[string][]domain.WarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM scenario_events ` + where + ` ORDER BY scenario_id, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing scenario events: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.WarEvent)
	for rows.Next() {
		var (
			scenarioID string
			factions   string
			e          domain.WarEvent
		)
		if err := rows.Scan(
			&scenarioID, &e.ID, &e.Date, &e.Title, &e.Description,
			&e.StrategicImpact, &factions, &e.Location, &e.Latitude, &e.Longitude,
		); err != nil {
			return nil, fmt.Errorf("scanning scenario event: %w", err)
		}
		if e.FactionsInvolved, err = decodeFactions(factions); err != nil {
			return nil, err
		}
		grouped[scenarioID] = append(grouped[scenarioID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenario events: %w", err)
	}
	return grouped, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*domain.SavedScenario, error) {
	var (
		s      domain.SavedScenario
		source string
		region string
	)
	err := row.Scan(
		&s.ID, &s.ScenarioName, &s.Overview, &s.Timestamp, &source,
		&s.Input.Name, &s.Input.Description, &region, &s.Input.AdditionalContext,
		&s.Input.EventCount, &s.Input.StartYear, &s.Input.EndYear,
	)
	if err != nil {
		return nil, err
	}
	s.Source = domain.GenerationSource(source)
	s.Input.Region = domain.Region(region)
	return &s, nil
}
