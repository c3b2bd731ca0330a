package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/markphelps/optional"

	"github.com/bradleyombachi/cpusched/render"
	"github.com/bradleyombachi/cpusched/scheduler"
)

type scheduleRequest struct {
	Algorithm string               `json:"algorithm"`
	Tasks     []scheduler.TaskSpec `json:"tasks"`
	Quantum   optional.Int         `json:"quantum"`
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// limitError is a request that is well formed but over the configured bounds.
type limitError struct {
	status int
	msg    string
}

func (e *limitError) Error() string { return e.msg }

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("decoding request: %w", err))
		return
	}
	if err := s.checkLimits(req.Tasks); err != nil {
		writeErr(w, err)
		return
	}

	report, err := scheduler.Schedule(scheduler.Request{
		Algorithm: req.Algorithm,
		Tasks:     req.Tasks,
		Quantum:   req.Quantum.OrElse(s.cfg.DefaultQuantum),
	})
	if err != nil {
		writeErr(w, err)
		return
	}

	if r.URL.Query().Get("format") == "table" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		render.Report(w, report.Algorithm, report)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": scheduler.Algorithms()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// checkLimits bounds the size of the simulation: the task count, and the
// latest arrival plus the total burst time.
func (s *Server) checkLimits(tasks []scheduler.TaskSpec) error {
	if len(tasks) > s.cfg.MaxTasks {
		return &limitError{
			status: http.StatusRequestEntityTooLarge,
			msg:    fmt.Sprintf("too many tasks: %d > %d", len(tasks), s.cfg.MaxTasks),
		}
	}
	horizon, latest := 0, 0
	for _, t := range tasks {
		if t.ArrivalTime > s.cfg.MaxHorizon || t.BurstTime > s.cfg.MaxHorizon {
			return &limitError{status: http.StatusBadRequest, msg: fmt.Sprintf("task %d exceeds max horizon %d", t.ID, s.cfg.MaxHorizon)}
		}
		latest = max(latest, t.ArrivalTime)
		if t.BurstTime > 0 {
			horizon += t.BurstTime
		}
	}
	if horizon+latest > s.cfg.MaxHorizon {
		return &limitError{
			status: http.StatusBadRequest,
			msg:    fmt.Sprintf("simulated horizon %d exceeds %d", horizon+latest, s.cfg.MaxHorizon),
		}
	}
	return nil
}

// writeErr maps engine and limit errors to HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	var (
		le *limitError
		ve *scheduler.ValidationError
		ue *scheduler.UnknownAlgorithmError
		ce *scheduler.InvalidConfigurationError
	)
	switch {
	case errors.As(err, &le):
		writeError(w, le.status, "limit", err)
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, "validation", err)
	case errors.As(err, &ue):
		writeError(w, http.StatusBadRequest, "unknown_algorithm", err)
	case errors.As(err, &ce):
		writeError(w, http.StatusBadRequest, "invalid_configuration", err)
	default:
		log.Printf("[server] internal scheduling error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	writeJSON(w, status, errorBody{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] encoding response: %v", err)
	}
}
