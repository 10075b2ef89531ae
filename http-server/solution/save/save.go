package save

import (
	"context"
	"encoding/json"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"rota-golang/internal/config"
	"rota-golang/internal/storage"
	"strconv"
	"time"
)

type SolutionSaver interface {
	SaveSolutionRun(ctx context.Context, run storage.SolutionRun, variables map[string]float64) (int64, error)
}

type Request struct {
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	NumPersonnel int                `json:"num_personnel"`
	NumSections  int                `json:"num_sections"`
	NumShifts    int                `json:"num_shifts"`
	Variables    map[string]float64 `json:"variables"`
}

type Response struct {
	RunID  int64  `json:"run_id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

func SaveSolutionRun(log *slog.Logger, saver SolutionSaver, defaults config.RosterDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.solution.SaveSolutionRun"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON body", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		// Absent month/year default to the current ones.
		now := time.Now()
		if req.Month == 0 {
			req.Month = int(now.Month())
		}
		if req.Year == 0 {
			req.Year = now.Year()
		}
		if req.Month < 1 || req.Month > 12 {
			http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
			return
		}
		if req.Year < 0 {
			http.Error(w, "year must be non-negative", http.StatusBadRequest)
			return
		}
		if len(req.Variables) == 0 {
			http.Error(w, "variables must not be empty", http.StatusBadRequest)
			return
		}

		run := storage.SolutionRun{
			Year:         req.Year,
			Month:        req.Month,
			NumPersonnel: req.NumPersonnel,
			NumSections:  req.NumSections,
			NumShifts:    req.NumShifts,
		}
		if run.NumPersonnel == 0 {
			run.NumPersonnel = defaults.NumPersonnel
		}
		if run.NumSections == 0 {
			run.NumSections = defaults.NumSections
		}
		if run.NumShifts == 0 {
			run.NumShifts = defaults.NumShifts
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		runID, err := saver.SaveSolutionRun(ctx, run, req.Variables)
		if err != nil {
			log.Error("failed to save solution run", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "failed to save solution"})
			return
		}

		render.JSON(w, r, Response{
			RunID:  runID,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
