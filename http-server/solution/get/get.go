package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"rota-golang/internal/storage"
	"time"
)

type SolutionLister interface {
	ListSolutionRuns(ctx context.Context) ([]storage.SolutionRun, error)
}

type ResponseRuns struct {
	Runs  []storage.SolutionRun `json:"runs"`
	Error string                `json:"error"`
}

func GetSolutionRuns(log *slog.Logger, lister SolutionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.solution.GetSolutionRuns"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		runs, err := lister.ListSolutionRuns(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch solution runs")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseRuns{Runs: runs})
	}
}
