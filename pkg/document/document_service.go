package document

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
	"Aethera-Backend/internal/utils"
	"Aethera-Backend/internal/utils/storage"
	"Aethera-Backend/pkg/emission"
	"Aethera-Backend/pkg/factor"
)

type (
	DocumentService interface {
		UploadDocument(ctx context.Context, req domain.UploadDocumentRequest, userID string) (domain.UploadDocumentResponse, error)
		GetScanResult(ctx context.Context, scanID string, userID string) (domain.DocumentScanResponse, error)
		SaveExtractedRecords(ctx context.Context, req domain.SaveExtractedRequest, userID string) error
	}

	documentService struct {
		documentRepository DocumentRepository
		emissionRepository emission.EmissionRepository
		factorService      factor.FactorService
		s3                 storage.AwsS3
	}
)

func NewDocumentService(
	documentRepository DocumentRepository,
	emissionRepository emission.EmissionRepository,
	factorService factor.FactorService,
	s3 storage.AwsS3,
) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		emissionRepository: emissionRepository,
		factorService:      factorService,
		s3:                 s3,
	}
}

func (s *documentService) UploadDocument(ctx context.Context, req domain.UploadDocumentRequest, userID string) (domain.UploadDocumentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadDocumentResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("document-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Document, "documents", storage.AllowDocument...)
	if err != nil {
		return domain.UploadDocumentResponse{}, err
	}

	fileURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.DocumentScan{
		ID:       scanID,
		UserID:   userUUID,
		FileName: req.Document.Filename,
		FileURL:  fileURL,
		Status:   "Pending",
	}

	if err := s.documentRepository.CreateDocumentScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadDocumentResponse{}, err
	}

	go s.extractActivities(scan, req.Document)

	return domain.UploadDocumentResponse{
		ScanID:  scanID.String(),
		FileURL: fileURL,
		Status:  "Pending",
	}, nil
}

// extractActivities runs after the upload response is sent. The scan row
// records either the extracted activities or the failure reason.
func (s *documentService) extractActivities(scan *entities.DocumentScan, file *multipart.FileHeader) {
	activities, err := s.callExtractionAPI(context.Background(), file)
	if err != nil {
		scan.Status = "Failed"
		scan.ExtractionResults = fmt.Sprintf("Error: %s", err.Error())
		_ = s.documentRepository.UpdateDocumentScan(context.Background(), scan)
		return
	}

	resultsJSON, _ := json.Marshal(activities)
	scan.Status = "Processed"
	scan.ExtractionResults = string(resultsJSON)
	_ = s.documentRepository.UpdateDocumentScan(context.Background(), scan)
}

func (s *documentService) GetScanResult(ctx context.Context, scanID string, userID string) (domain.DocumentScanResponse, error) {
	scan, err := s.documentRepository.GetDocumentScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DocumentScanResponse{}, domain.ErrDocumentScanNotFound
		}
		return domain.DocumentScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.DocumentScanResponse{}, domain.ErrUnauthorizedAccess
	}

	response := domain.DocumentScanResponse{
		ScanID:   scan.ID.String(),
		FileName: scan.FileName,
		FileURL:  scan.FileURL,
		Status:   scan.Status,
	}

	if scan.Status == "Processed" || scan.Status == "Completed" {
		var activities []domain.ExtractedActivity
		if err := json.Unmarshal([]byte(scan.ExtractionResults), &activities); err == nil {
			response.Activities = activities
		}
	}

	return response, nil
}

func (s *documentService) SaveExtractedRecords(ctx context.Context, req domain.SaveExtractedRequest, userID string) error {
	scan, err := s.documentRepository.GetDocumentScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDocumentScanNotFound
		}
		return err
	}

	if scan.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	table := s.factorService.Table(ctx)
	scanIDStr := scan.ID.String()
	description := fmt.Sprintf("Extracted from %s", scan.FileName)

	var records []*entities.EmissionRecord
	for _, item := range req.Items {
		enriched := emission.Enrich(emission.RecordFromExtraction(item), table)
		if enriched.ActivityType == "" || enriched.Quantity == 0 {
			continue
		}

		date := enriched.Date
		if date.IsZero() {
			date = time.Now()
		}

		category := enriched.Category
		if entry, ok := table.Lookup(enriched.ActivityType); ok && category == "" {
			category = entry.Category
		}
		if category == "" {
			category = "Unknown"
		}

		records = append(records, &entities.EmissionRecord{
			ID:             uuid.New(),
			UserID:         userUUID,
			ActivityType:   enriched.ActivityType,
			Category:       category,
			Scope:          enriched.Scope,
			Quantity:       enriched.Quantity,
			Unit:           enriched.Unit,
			EmissionFactor: enriched.EmissionFactor,
			TotalEmissions: enriched.TotalEmissions,
			Date:           date,
			Description:    description,
			Source:         "document",
			DocumentScanID: &scanIDStr,
		})
	}

	if err := s.emissionRepository.CreateEmissionRecords(ctx, records); err != nil {
		return err
	}

	scan.Status = "Completed"
	return s.documentRepository.UpdateDocumentScan(ctx, scan)
}

func (s *documentService) callExtractionAPI(ctx context.Context, file *multipart.FileHeader) ([]domain.ExtractedActivity, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fileData, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	base64Data := base64.StdEncoding.EncodeToString(fileData)

	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/pdf"
		switch strings.ToLower(filepath.Ext(file.Filename)) {
		case ".png":
			mimeType = "image/png"
		case ".jpg", ".jpeg":
			mimeType = "image/jpeg"
		case ".csv":
			mimeType = "text/csv"
		}
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": "Extract greenhouse gas activity data from this document. Respond ONLY with a valid JSON array where each element has exactly these fields: 'activity_type' (string), 'scope' (number 1, 2 or 3), 'quantity' (number), 'unit' (string), 'date' (string in YYYY-MM-DD format or empty), 'supplier' (string or empty), and 'confidence' (number between 0 and 1). Do not include any explanations, markdown formatting, or extra text.",
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Data,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 60 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrExtractionFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	jsonPattern := regexp.MustCompile(`(?s)\[.*\]`)
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var activities []domain.ExtractedActivity
	if err := json.Unmarshal([]byte(responseText), &activities); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %v - Raw response: %s", err, responseText)
	}

	if len(activities) == 0 {
		return nil, domain.ErrExtractionFailed
	}

	return activities, nil
}
