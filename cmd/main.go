package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/poofware/onboarding-service/internal/app"
	"github.com/poofware/onboarding-service/internal/config"
	"github.com/poofware/onboarding-service/internal/controllers"
	"github.com/poofware/onboarding-service/internal/routes"
	"github.com/poofware/onboarding-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (store, services)
	application := app.NewApp(cfg)
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	propertyCtrl := controllers.NewPropertyController(application.PropertyService)

	// 4) Router. Literal routes before {id} so /stats, /drafts and /draft
	// don't get swallowed by the id matcher.
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.PropertyStats, propertyCtrl.GetStatsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyDrafts, propertyCtrl.ListDraftsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyDraft, propertyCtrl.CreateDraftHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertyDraftByID, propertyCtrl.DeleteDraftHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Properties, propertyCtrl.ListPropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Properties, propertyCtrl.CreatePropertyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.GetPropertyHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.UpdatePropertyHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.PropertyAutosave, propertyCtrl.AutosaveHandler).Methods(http.MethodPatch)
	router.HandleFunc(routes.PropertyStep, propertyCtrl.UpdateStepHandler).Methods(http.MethodPatch)
	router.HandleFunc(routes.PropertyFinalize, propertyCtrl.FinalizeHandler).Methods(http.MethodPost)

	// 5) Periodic onboarding-stats log line for ops visibility
	statsCron := cron.New()
	if _, err := statsCron.AddFunc(cfg.StatsLogSchedule, func() {
		stats, err := application.PropertyService.Stats(context.Background())
		if err != nil {
			utils.Logger.WithError(err).Error("Failed to compute scheduled stats")
			return
		}
		utils.Logger.Infof("Onboarding stats: %d properties (%d complete, %d in progress, %d not started), %d units",
			stats.TotalProperties, stats.CompletedProperties, stats.InProgressProperties,
			stats.NotStartedProperties, stats.TotalUnits)
	}); err != nil {
		utils.Logger.WithError(err).Fatal("Invalid STATS_LOG_SCHEDULE")
	}
	statsCron.Start()
	defer statsCron.Stop()

	// 6) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
