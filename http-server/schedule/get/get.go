package get

import (
	"context"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"rota-golang/internal/service/schedule"
	"rota-golang/internal/storage"
	"rota-golang/internal/storage/mysql"
	"strconv"
	"time"
)

type RosterBuilder interface {
	BuildRoster(ctx context.Context, runID int64) (*schedule.Roster, *storage.SolutionRun, error)
}

type ResponseRoster struct {
	Run    *storage.SolutionRun `json:"run"`
	Roster *schedule.Roster     `json:"roster"`
	Error  string               `json:"error"`
}

func GetRoster(log *slog.Logger, builder RosterBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.GetRoster"

		runID, err := strconv.ParseInt(r.URL.Query().Get("run_id"), 10, 64)
		if err != nil {
			log.With(slog.String("op", op)).Error("Missing or invalid 'run_id' in query parameters")
			http.Error(w, "Missing required query parameter 'run_id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		roster, run, err := builder.BuildRoster(ctx, runID)
		if err != nil {
			if errors.Is(err, mysql.ErrRunNotFound) {
				log.With(slog.String("op", op), slog.Int64("run_id", runID)).Warn("Run not found")
				http.Error(w, "Run not found", http.StatusNotFound)
				return
			}

			var cfgErr *schedule.ConfigError
			if errors.As(err, &cfgErr) {
				log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("Run has invalid dimensions")
				http.Error(w, cfgErr.Error(), http.StatusUnprocessableEntity)
				return
			}

			log.With(
				slog.String("op", op),
				slog.Int64("run_id", runID),
				slog.String("error", err.Error()),
			).Error("Failed to build roster")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseRoster{Run: run, Roster: roster})
	}
}
