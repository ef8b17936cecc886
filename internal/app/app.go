package app

import (
	"github.com/poofware/onboarding-service/internal/config"
	"github.com/poofware/onboarding-service/internal/repositories"
	"github.com/poofware/onboarding-service/internal/services"
	"github.com/poofware/onboarding-service/internal/utils"
)

// App holds references to config, the store and the services.
type App struct {
	Config          *config.Config
	Store           repositories.PropertyRepository
	PropertyService *services.PropertyService
}

// NewApp sets up the core application context. The store is in-memory, so
// there is no connection handling here; the repository interface keeps the
// door open for a real database later.
func NewApp(cfg *config.Config) *App {
	utils.Logger.Info("Initializing onboarding-service App")

	store := repositories.NewMemoryPropertyStore()
	propertySvc := services.NewPropertyService(store)

	return &App{
		Config:          cfg,
		Store:           store,
		PropertyService: propertySvc,
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("onboarding-service app shutting down.")
}
