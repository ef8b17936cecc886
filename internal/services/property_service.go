package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/poofware/onboarding-service/internal/dtos"
	"github.com/poofware/onboarding-service/internal/models"
	"github.com/poofware/onboarding-service/internal/repositories"
	"github.com/poofware/onboarding-service/internal/utils"
	"github.com/poofware/onboarding-service/internal/validation"
)

// PropertyService owns the onboarding operation semantics. Every mutation
// recomputes the derived completion state as its final step before
// persisting; the store never sees a property with stale derived fields.
type PropertyService struct {
	repo repositories.PropertyRepository
}

func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

// ----------------------------------------------------------------
// Create (strict)
// ----------------------------------------------------------------

// Create validates the full submission and persists it. The cross-field
// checks (ownership-share sum, rent presence, duplicate unit numbers) run
// first, mirroring the submission pipeline's attached validators; the shared
// field validator runs after. Either layer rejecting aborts the create.
func (s *PropertyService) Create(ctx context.Context, req dtos.CreatePropertyRequest) (*models.Property, error) {
	p := req.ToModel()

	if msgs := s.strictValidate(&p); len(msgs) > 0 {
		return nil, utils.NewValidationError(msgs)
	}

	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	validation.Recompute(&p)

	err := s.repo.WithTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, &p)
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Infof("Created property %s (%s, %d units, %d%% complete)",
		p.ID, p.Type, p.UnitCount, p.CompletionPercentage)
	return &p, nil
}

// strictValidate returns the blocking messages for the create/finalize path.
// The step predicates stay deliberately more lenient than this.
func (s *PropertyService) strictValidate(p *models.Property) []string {
	var msgs []string
	for _, b := range p.Buildings {
		if ok, msg := validation.CheckUniqueUnitNumbers(b); !ok {
			msgs = append(msgs, msg)
		}
		switch p.Type {
		case models.PropertyTypeWEG:
			if ok, msg := validation.CheckOwnershipShares(b); !ok {
				msgs = append(msgs, msg)
			}
		case models.PropertyTypeMV:
			if ok, msg := validation.CheckRentPresence(b); !ok {
				msgs = append(msgs, msg)
			}
		}
	}
	if len(msgs) > 0 {
		return msgs
	}

	if res := validation.ValidateProperty(p); !res.IsValid {
		return res.Errors
	}
	return nil
}

// ----------------------------------------------------------------
// Drafts
// ----------------------------------------------------------------

// CreateDraft seeds a draft from whatever partial data the wizard has so far.
// Nothing blocks here; the completion state simply reports honest progress.
func (s *PropertyService) CreateDraft(ctx context.Context, req dtos.CreateDraftRequest) (*models.Property, error) {
	p := models.Property{
		ID:                uuid.New(),
		Name:              req.Name,
		Type:              models.PropertyTypeWEG,
		PropertyNumber:    req.PropertyNumber,
		ManagementCompany: req.ManagementCompany,
		PropertyManager:   req.PropertyManager,
		Accountant:        req.Accountant,
		Address:           req.Address,
		Buildings:         dtos.BuildingsToModels(req.Buildings),
		Status:            models.PropertyStatusActive,
		CurrentStep:       1,
		CreatedAt:         time.Now().UTC(),
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.CurrentStep != nil {
		p.CurrentStep = *req.CurrentStep
	}
	validation.Recompute(&p)

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	utils.Logger.Infof("Created draft property %s (%d%% complete)", p.ID, p.CompletionPercentage)
	return &p, nil
}

// ListDrafts returns every property still navigable in the wizard, i.e. not
// yet at 100% completion.
func (s *PropertyService) ListDrafts(ctx context.Context) ([]*models.Property, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	drafts := make([]*models.Property, 0, len(all))
	for _, p := range all {
		if p.CompletionPercentage < 100 {
			drafts = append(drafts, p)
		}
	}
	return drafts, nil
}

// DeleteDraft removes a property. Deletion is immediate and irreversible.
func (s *PropertyService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ----------------------------------------------------------------
// Reads
// ----------------------------------------------------------------

func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrPropertyNotFound
	}
	return p, nil
}

func (s *PropertyService) List(ctx context.Context) ([]*models.Property, error) {
	return s.repo.List(ctx)
}

// ----------------------------------------------------------------
// Partial updates
// ----------------------------------------------------------------

// Update merges the non-nil request fields into the property (PUT semantics
// in the API, but field-wise merge like the wizard expects).
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	return s.applyPatch(ctx, id, req)
}

// Autosave is the lenient background-save path: it always accepts
// structurally valid partial input and recomputes completion honestly.
func (s *PropertyService) Autosave(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	return s.applyPatch(ctx, id, req)
}

func (s *PropertyService) applyPatch(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrPropertyNotFound
	}

	req.ApplyTo(p)
	validation.Recompute(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStep applies a step-scoped partial update. Step 1 merges general
// fields; steps 2 and 3 replace the buildings wholesale when the payload
// carries a buildings list.
func (s *PropertyService) UpdateStep(ctx context.Context, id uuid.UUID, step int, req dtos.UpdateStepRequest) (*models.Property, error) {
	if step < 1 || step > 3 {
		return nil, utils.ErrInvalidStepNumber
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrPropertyNotFound
	}

	switch step {
	case 1:
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.PropertyNumber != nil {
			p.PropertyNumber = *req.PropertyNumber
		}
		if req.ManagementCompany != nil {
			p.ManagementCompany = *req.ManagementCompany
		}
		if req.PropertyManager != nil {
			p.PropertyManager = *req.PropertyManager
		}
		if req.Accountant != nil {
			p.Accountant = *req.Accountant
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
	case 2, 3:
		if req.Buildings != nil {
			p.Buildings = dtos.BuildingsToModels(*req.Buildings)
		}
	}
	p.CurrentStep = step
	validation.Recompute(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----------------------------------------------------------------
// Finalize
// ----------------------------------------------------------------

// Finalize re-runs the full strict ruleset over a draft and, if it passes,
// persists it with its completion state recomputed. This is the only path
// besides Create where the ownership-sum rule blocks.
func (s *PropertyService) Finalize(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrPropertyNotFound
	}

	if msgs := s.strictValidate(p); len(msgs) > 0 {
		return nil, utils.NewValidationError(msgs)
	}

	p.Status = models.PropertyStatusActive
	validation.Recompute(p)

	err = s.repo.WithTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Infof("Finalized property %s (%d%% complete)", p.ID, p.CompletionPercentage)
	return p, nil
}
