package routes

const (
	// Health
	Health = "/health"

	// Property onboarding endpoints. Stats/drafts/draft must be registered
	// before PropertyByID so the literal segments win over {id}.
	Properties        = "/api/v1/property"
	PropertyStats     = "/api/v1/property/stats"
	PropertyDrafts    = "/api/v1/property/drafts"
	PropertyDraft     = "/api/v1/property/draft"
	PropertyDraftByID = "/api/v1/property/draft/{id}"
	PropertyByID      = "/api/v1/property/{id}"
	PropertyAutosave  = "/api/v1/property/{id}/autosave"
	PropertyStep      = "/api/v1/property/{id}/step/{step}"
	PropertyFinalize  = "/api/v1/property/{id}/finalize"
)
