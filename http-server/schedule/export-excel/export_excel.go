package export_excel

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, runID int64) ([]byte, string, error)
}

func ExportScheduleExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.ExportScheduleExcel"

		runID, err := strconv.ParseInt(r.URL.Query().Get("run_id"), 10, 64)
		if err != nil {
			http.Error(w, "Missing required query parameter 'run_id'", http.StatusBadRequest)
			return
		}

		// Workbook generation gets more room than the JSON endpoints.
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, fileName, err := gen.GenerateExcel(ctx, runID)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
