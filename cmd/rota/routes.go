package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"log/slog"
	getpersonnel "rota-golang/http-server/personnel/get"
	uppersonnel "rota-golang/http-server/personnel/update"
	export_excel "rota-golang/http-server/schedule/export-excel"
	getschedule "rota-golang/http-server/schedule/get"
	getsolution "rota-golang/http-server/solution/get"
	savesolution "rota-golang/http-server/solution/save"
	"rota-golang/internal/config"
	"rota-golang/internal/middleware/auth"
	generate_excel "rota-golang/internal/service/generate-excel"
	"rota-golang/internal/service/schedule"
	"rota-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, scheduleService *schedule.Service, excelService *generate_excel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// solver output upload and run listing
	router.Post("/api/solution", savesolution.SaveSolutionRun(log, storage, cfg.Roster))
	router.Get("/api/solutions", getsolution.GetSolutionRuns(log, storage))

	// composed calendar grid as JSON
	router.Get("/api/schedule", getschedule.GetRoster(log, scheduleService))

	// xlsx download
	router.Get("/api/schedule/excel", export_excel.ExportScheduleExcel(log, excelService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/personnel", getpersonnel.GetPersonnelAdmin(log, storage))
	adminRouter.Put("/personnel/update", uppersonnel.UpdatePersonnelAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
