package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"rota-golang/internal/storage"
	"time"
)

type PersonnelReader interface {
	GetAllPersonnel(ctx context.Context) ([]storage.Personnel, error)
}

type ResponsePersonnel struct {
	Personnel []storage.Personnel `json:"personnel"`
	Error     string              `json:"error"`
}

func GetPersonnelAdmin(log *slog.Logger, reader PersonnelReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.personnel.GetPersonnelAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		personnel, err := reader.GetAllPersonnel(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch personnel")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponsePersonnel{Personnel: personnel})
	}
}
