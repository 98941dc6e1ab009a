package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/geo"
	"github.com/alexanderramin/chronos/internal/importer"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/gorilla/mux"
)

// saveRequest is a generated result plus, optionally, the input that produced it.
type saveRequest struct {
	domain.GenerationResult
	Input *domain.ScenarioInput `json:"input,omitempty"`
}

// clustersResponse carries everything a map view needs to place markers.
type clustersResponse struct {
	ScenarioID string         `json:"scenarioId"`
	Threshold  float64        `json:"threshold"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Clusters   []*geo.Cluster `json:"clusters"`
}

type errorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var input domain.ScenarioInput
	if err := decodeJSON(w, r, &input); err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		s.writeError(w, r, badRequest(errors.Join(errs...)))
		return
	}

	result := s.scenarios.Generate(r.Context(), input)
	w.Header().Set(SourceHeader, string(result.Source))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.library.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []*domain.SavedScenario{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, badRequest(err))
		return
	}
	if req.ScenarioName == "" {
		s.writeError(w, r, badRequest(errors.New("scenarioName is required")))
		return
	}
	saved, err := s.library.Save(r.Context(), req.GenerationResult, req.Input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	saved, err := s.library.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.library.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	threshold := s.threshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			s.writeError(w, r, badRequest(fmt.Errorf("threshold must be a positive number, got %q", raw)))
			return
		}
		threshold = v
	}

	id := mux.Vars(r)["id"]
	saved, err := s.library.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clustersResponse{
		ScenarioID: id,
		Threshold:  threshold,
		Width:      s.clusterer.Projector.Width,
		Height:     s.clusterer.Projector.Height,
		Clusters:   s.clusterer.Cluster(saved.Events, threshold),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, name, err := s.library.Export(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, badRequest(fmt.Errorf("reading body: %w", err)))
		return
	}
	saved, err := s.library.Import(r.Context(), data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// requestError marks a failure caused by the client's request.
type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return &requestError{err: err} }

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		reqErr *requestError
		impErr *importer.ImportError
	)
	switch {
	case errors.As(err, &impErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: importer.ErrImportInvalid.Error(), Problems: impErr.Problems})
	case errors.As(err, &reqErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
