package controllers

import (
	"net/http"

	"github.com/poofware/onboarding-service/internal/app"
	"github.com/poofware/onboarding-service/internal/dtos"
	"github.com/poofware/onboarding-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Probe the only dependency: the in-memory store.
	count, err := c.app.Store.Count(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("onboarding-service unhealthy")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			nil,
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{
		Status:     "OK",
		Properties: count,
	})
}
