package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/poofware/onboarding-service/internal/dtos"
	"github.com/poofware/onboarding-service/internal/services"
	"github.com/poofware/onboarding-service/internal/utils"
)

type PropertyController struct {
	propertyService *services.PropertyService
}

var validate = validator.New()

func NewPropertyController(ps *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: ps}
}

// ----------------------------------------------------------------
// GET /api/v1/property
// ----------------------------------------------------------------
func (c *PropertyController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	properties, err := c.propertyService.List(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list properties")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to list properties", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, properties)
}

// ----------------------------------------------------------------
// GET /api/v1/property/stats
// ----------------------------------------------------------------
func (c *PropertyController) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := c.propertyService.Stats(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to compute property stats")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to compute stats", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// ----------------------------------------------------------------
// GET /api/v1/property/drafts
// ----------------------------------------------------------------
func (c *PropertyController) ListDraftsHandler(w http.ResponseWriter, r *http.Request) {
	drafts, err := c.propertyService.ListDrafts(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list draft properties")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to list drafts", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, drafts)
}

// ----------------------------------------------------------------
// GET /api/v1/property/{id}
// ----------------------------------------------------------------
func (c *PropertyController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	property, err := c.propertyService.GetByID(r.Context(), id)
	if err != nil {
		c.respondServiceError(w, err, "Failed to fetch property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// ----------------------------------------------------------------
// POST /api/v1/property
// ----------------------------------------------------------------
func (c *PropertyController) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation error", nil, err,
		)
		return
	}

	property, err := c.propertyService.Create(r.Context(), req)
	if err != nil {
		c.respondServiceError(w, err, "Failed to create property")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, property)
}

// ----------------------------------------------------------------
// PUT /api/v1/property/{id}
// ----------------------------------------------------------------
func (c *PropertyController) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation error", nil, err,
		)
		return
	}

	property, err := c.propertyService.Update(r.Context(), id, req)
	if err != nil {
		c.respondServiceError(w, err, "Failed to update property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// ----------------------------------------------------------------
// POST /api/v1/property/draft
// ----------------------------------------------------------------
func (c *PropertyController) CreateDraftHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation error", nil, err,
		)
		return
	}

	draft, err := c.propertyService.CreateDraft(r.Context(), req)
	if err != nil {
		c.respondServiceError(w, err, "Failed to create draft")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, draft)
}

// ----------------------------------------------------------------
// PATCH /api/v1/property/{id}/autosave
// ----------------------------------------------------------------
func (c *PropertyController) AutosaveHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation error", nil, err,
		)
		return
	}

	property, err := c.propertyService.Autosave(r.Context(), id, req)
	if err != nil {
		c.respondServiceError(w, err, "Failed to autosave property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// ----------------------------------------------------------------
// PATCH /api/v1/property/{id}/step/{step}
// ----------------------------------------------------------------
func (c *PropertyController) UpdateStepHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	step, err := strconv.Atoi(mux.Vars(r)["step"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidStep,
			"Invalid step number", nil, err,
		)
		return
	}

	var req dtos.UpdateStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation error", nil, err,
		)
		return
	}

	property, err := c.propertyService.UpdateStep(r.Context(), id, step, req)
	if err != nil {
		c.respondServiceError(w, err, "Failed to update step")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// ----------------------------------------------------------------
// POST /api/v1/property/{id}/finalize
// ----------------------------------------------------------------
func (c *PropertyController) FinalizeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	property, err := c.propertyService.Finalize(r.Context(), id)
	if err != nil {
		c.respondServiceError(w, err, "Failed to finalize property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// ----------------------------------------------------------------
// DELETE /api/v1/property/draft/{id}
// ----------------------------------------------------------------
func (c *PropertyController) DeleteDraftHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	if err := c.propertyService.DeleteDraft(r.Context(), id); err != nil {
		c.respondServiceError(w, err, "Failed to delete draft")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteResponse{Message: "Draft deleted"})
}

// ----------------------------------------------------------------
// shared helpers
// ----------------------------------------------------------------

// respondServiceError maps service errors onto transport statuses. NotFound
// and validation failures are always client errors, never 5xx.
func (c *PropertyController) respondServiceError(w http.ResponseWriter, err error, publicMessage string) {
	var valErr *utils.ValidationError
	switch {
	case errors.Is(err, utils.ErrPropertyNotFound):
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound,
			"Property not found", nil, err,
		)
	case errors.Is(err, utils.ErrInvalidStepNumber):
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidStep,
			"Invalid step number", nil, err,
		)
	case errors.As(err, &valErr):
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation error", valErr.Messages, err,
		)
	default:
		utils.Logger.WithError(err).Error(publicMessage)
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			publicMessage, nil, err,
		)
	}
}

func parsePropertyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid property id", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}
