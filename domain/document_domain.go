package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadDocument = "document uploaded successfully"
	MessageSuccessGetScanResult  = "document scan retrieved successfully"
	MessageSuccessSaveExtracted  = "extracted records saved successfully"

	MessageFailedUploadDocument = "failed to upload document"
	MessageFailedGetScanResult  = "failed to retrieve document scan"
	MessageFailedSaveExtracted  = "failed to save extracted records"

	ErrDocumentScanNotFound = errors.New("document scan not found")
	ErrExtractionFailed     = errors.New("document extraction failed")
)

type (
	UploadDocumentRequest struct {
		Document *multipart.FileHeader `json:"document" form:"document" validate:"required"`
	}

	UploadDocumentResponse struct {
		ScanID  string `json:"scan_id"`
		FileURL string `json:"file_url"`
		Status  string `json:"status"`
	}

	// ExtractedActivity is the best-effort tuple returned by the document
	// extraction provider. Scope and Quantity are untyped because the
	// provider may answer with "Scope 2" or 2, "1000" or 1000; both paths
	// go through the same normalization as manually entered records.
	ExtractedActivity struct {
		ActivityType string  `json:"activity_type"`
		Scope        any     `json:"scope"`
		Quantity     any     `json:"quantity"`
		Unit         string  `json:"unit"`
		Date         string  `json:"date,omitempty"`
		Supplier     string  `json:"supplier,omitempty"`
		Confidence   float64 `json:"confidence,omitempty"`
	}

	DocumentScanResponse struct {
		ScanID     string              `json:"scan_id"`
		FileName   string              `json:"file_name"`
		FileURL    string              `json:"file_url"`
		Status     string              `json:"status"`
		Activities []ExtractedActivity `json:"activities,omitempty"`
	}

	SaveExtractedRequest struct {
		ScanID string              `json:"scan_id" validate:"required,uuid"`
		Items  []ExtractedActivity `json:"items" validate:"required,dive"`
	}
)
