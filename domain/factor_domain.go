package domain

import (
	"errors"
)

var (
	MessageSuccessGetFactors   = "emission factors retrieved successfully"
	MessageSuccessUpsertFactor = "emission factor saved successfully"
	MessageSuccessDeleteFactor = "emission factor deleted successfully"

	MessageFailedGetFactors   = "failed to retrieve emission factors"
	MessageFailedUpsertFactor = "failed to save emission factor"
	MessageFailedDeleteFactor = "failed to delete emission factor"

	ErrFactorNotFound = errors.New("emission factor not found")
)

type (
	UpsertFactorRequest struct {
		ActivityType string  `json:"activity_type" validate:"required"`
		Category     string  `json:"category"`
		ScopeID      int     `json:"scope_id" validate:"omitempty,min=1,max=3"`
		Unit         string  `json:"unit" validate:"required"`
		Factor       float64 `json:"factor" validate:"required,gt=0"`
		Source       string  `json:"source"`
		Region       string  `json:"region"`
	}

	EmissionFactorResponse struct {
		ID           string  `json:"id,omitempty"`
		ActivityType string  `json:"activity_type"`
		Category     string  `json:"category"`
		ScopeID      int     `json:"scope_id,omitempty"`
		Unit         string  `json:"unit"`
		Factor       float64 `json:"factor"`
		Source       string  `json:"source,omitempty"`
		Region       string  `json:"region,omitempty"`
	}
)
