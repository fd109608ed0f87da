package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddEmission    = "emission record added successfully"
	MessageSuccessUpdateEmission = "emission record updated successfully"
	MessageSuccessDeleteEmission = "emission record deleted successfully"
	MessageSuccessGetEmissions   = "emission records retrieved successfully"
	MessageSuccessImportCSV      = "emission records imported successfully"

	MessageFailedAddEmission    = "failed to add emission record"
	MessageFailedUpdateEmission = "failed to update emission record"
	MessageFailedDeleteEmission = "failed to delete emission record"
	MessageFailedGetEmissions   = "failed to retrieve emission records"
	MessageFailedImportCSV      = "failed to import emission records"

	ErrEmissionNotFound   = errors.New("emission record not found")
	ErrInvalidDate        = errors.New("invalid date, expected format YYYY-MM-DD")
	ErrUnauthorizedAccess = errors.New("unauthorized access to emission record")
	ErrEmptyCSV           = errors.New("CSV file is empty or has no data rows")
	ErrRecordFetchFailed  = errors.New("failed to fetch emission records from store")
)

type (
	// Scope and Quantity stay loosely typed on purpose: clients send
	// "2", "Scope 2" or 2, and "1000" or 1000. Normalization happens in
	// pkg/emission before anything is stored.
	AddEmissionRequest struct {
		ActivityType   string `json:"activity_type" validate:"required"`
		Category       string `json:"category"`
		Scope          any    `json:"scope" validate:"required"`
		Quantity       any    `json:"quantity" validate:"required"`
		Unit           string `json:"unit" validate:"required"`
		EmissionFactor any    `json:"emission_factor"`
		TotalEmissions any    `json:"total_emissions"`
		Date           string `json:"date" validate:"required"`
		Description    string `json:"description"`
	}

	UpdateEmissionRequest struct {
		ActivityType   string `json:"activity_type" validate:"omitempty"`
		Category       string `json:"category" validate:"omitempty"`
		Scope          any    `json:"scope" validate:"omitempty"`
		Quantity       any    `json:"quantity" validate:"omitempty"`
		Unit           string `json:"unit" validate:"omitempty"`
		EmissionFactor any    `json:"emission_factor" validate:"omitempty"`
		Date           string `json:"date" validate:"omitempty"`
		Description    string `json:"description" validate:"omitempty"`
	}

	EmissionResponse struct {
		ID             string    `json:"id"`
		ActivityType   string    `json:"activity_type"`
		Category       string    `json:"category"`
		Scope          int       `json:"scope"`
		ScopeLabel     string    `json:"scope_label"`
		Quantity       float64   `json:"quantity"`
		Unit           string    `json:"unit"`
		EmissionFactor float64   `json:"emission_factor"`
		TotalEmissions float64   `json:"total_emissions"`
		Date           time.Time `json:"date"`
		Description    string    `json:"description,omitempty"`
		Source         string    `json:"source"`
		CreatedAt      time.Time `json:"created_at"`
	}

	ImportCSVRequest struct {
		File *multipart.FileHeader `json:"file" form:"file" validate:"required"`
	}

	ImportCSVResponse struct {
		Inserted int `json:"inserted"`
		Skipped  int `json:"skipped"`
	}
)
