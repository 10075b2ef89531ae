package update

import (
	"context"
	"encoding/json"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"rota-golang/internal/storage"
	"strconv"
	"time"
)

type PersonnelWriter interface {
	UpsertPersonnel(ctx context.Context, p storage.Personnel) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func UpdatePersonnelAdmin(log *slog.Logger, writer PersonnelWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.personnel.UpdatePersonnelAdmin"

		var req storage.Personnel
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON body", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if req.Index < 1 {
			http.Error(w, "index must be positive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := writer.UpsertPersonnel(ctx, req); err != nil {
			log.Error("failed to save personnel", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "failed to save personnel"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
