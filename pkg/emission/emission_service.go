package emission

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Aethera-Backend/domain"
	"Aethera-Backend/entities"
	"Aethera-Backend/pkg/factor"
)

type (
	EmissionService interface {
		AddEmission(ctx context.Context, req domain.AddEmissionRequest, userID string) (domain.EmissionResponse, error)
		UpdateEmission(ctx context.Context, id string, req domain.UpdateEmissionRequest, userID string) error
		DeleteEmission(ctx context.Context, id string, userID string) error
		GetEmissions(ctx context.Context, userID string, page, limit int) ([]domain.EmissionResponse, int64, error)
		ImportCSV(ctx context.Context, req domain.ImportCSVRequest, userID string) (domain.ImportCSVResponse, error)
	}

	emissionService struct {
		emissionRepository EmissionRepository
		factorService      factor.FactorService
	}
)

func NewEmissionService(emissionRepository EmissionRepository, factorService factor.FactorService) EmissionService {
	return &emissionService{
		emissionRepository: emissionRepository,
		factorService:      factorService,
	}
}

func (s *emissionService) AddEmission(ctx context.Context, req domain.AddEmissionRequest, userID string) (domain.EmissionResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.EmissionResponse{}, domain.ErrInvalidDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EmissionResponse{}, domain.ErrParseUUID
	}

	table := s.factorService.Table(ctx)
	enriched := Enrich(Record{
		"activity_type":   req.ActivityType,
		"category":        req.Category,
		"scope":           req.Scope,
		"quantity":        req.Quantity,
		"unit":            req.Unit,
		"emission_factor": req.EmissionFactor,
		"total_emissions": req.TotalEmissions,
		"description":     req.Description,
	}, table)

	record := &entities.EmissionRecord{
		ID:             uuid.New(),
		UserID:         userUUID,
		ActivityType:   enriched.ActivityType,
		Category:       backfillCategory(enriched.Category, enriched.ActivityType, table),
		Scope:          enriched.Scope,
		Quantity:       enriched.Quantity,
		Unit:           enriched.Unit,
		EmissionFactor: enriched.EmissionFactor,
		TotalEmissions: enriched.TotalEmissions,
		Date:           date,
		Description:    enriched.Description,
		Source:         "manual",
	}

	if err := s.emissionRepository.CreateEmissionRecord(ctx, record); err != nil {
		return domain.EmissionResponse{}, err
	}

	return toEmissionResponse(record), nil
}

func (s *emissionService) UpdateEmission(ctx context.Context, id string, req domain.UpdateEmissionRequest, userID string) error {
	record, err := s.emissionRepository.GetEmissionRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmissionNotFound
		}
		return err
	}

	if record.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.ActivityType != "" {
		record.ActivityType = req.ActivityType
	}
	if req.Category != "" {
		record.Category = req.Category
	}
	if req.Scope != nil {
		record.Scope = NormalizeScopeNumber(req.Scope)
	}
	if req.Quantity != nil {
		record.Quantity = AsNumber(req.Quantity)
	}
	if req.Unit != "" {
		record.Unit = req.Unit
	}
	if req.EmissionFactor != nil {
		record.EmissionFactor = AsNumber(req.EmissionFactor)
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.ErrInvalidDate
		}
		record.Date = date
	}
	if req.Description != "" {
		record.Description = req.Description
	}

	// Totals are derived, never patched: recompute from the updated fields so
	// a stale precomputed total cannot survive an edit.
	raw := RecordFromEntity(record)
	delete(raw, "total_emissions")
	enriched := Enrich(raw, s.factorService.Table(ctx))
	record.EmissionFactor = enriched.EmissionFactor
	record.TotalEmissions = enriched.TotalEmissions
	record.Scope = enriched.Scope

	return s.emissionRepository.UpdateEmissionRecord(ctx, record)
}

func (s *emissionService) DeleteEmission(ctx context.Context, id string, userID string) error {
	record, err := s.emissionRepository.GetEmissionRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmissionNotFound
		}
		return err
	}

	if record.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.emissionRepository.DeleteEmissionRecord(ctx, id)
}

func (s *emissionService) GetEmissions(ctx context.Context, userID string, page, limit int) ([]domain.EmissionResponse, int64, error) {
	records, count, err := s.emissionRepository.GetEmissionRecordsPage(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.EmissionResponse
	for _, record := range records {
		response = append(response, toEmissionResponse(record))
	}

	return response, count, nil
}

func (s *emissionService) ImportCSV(ctx context.Context, req domain.ImportCSVRequest, userID string) (domain.ImportCSVResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ImportCSVResponse{}, domain.ErrParseUUID
	}

	file, err := req.File.Open()
	if err != nil {
		return domain.ImportCSVResponse{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return domain.ImportCSVResponse{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return domain.ImportCSVResponse{}, domain.ErrEmptyCSV
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	table := s.factorService.Table(ctx)
	description := fmt.Sprintf("Bulk uploaded from %s", req.File.Filename)

	var records []*entities.EmissionRecord
	skipped := 0
	for _, row := range rows[1:] {
		raw := RecordFromRow(
			cell(row, "activity_type"),
			cell(row, "scope"),
			cell(row, "quantity"),
			cell(row, "unit"),
			cell(row, "category"),
		)
		enriched := Enrich(raw, table)
		if enriched.ActivityType == "" || enriched.Quantity == 0 {
			skipped++
			continue
		}

		date := time.Now()
		if d := cell(row, "date"); d != "" {
			if parsed, err := time.Parse("2006-01-02", d); err == nil {
				date = parsed
			}
		}

		unit := enriched.Unit
		category := enriched.Category
		if entry, ok := table.Lookup(enriched.ActivityType); ok {
			if unit == "" {
				unit = entry.Unit
			}
			if category == "Unknown" && entry.Category != "" {
				category = entry.Category
			}
		}

		records = append(records, &entities.EmissionRecord{
			ID:             uuid.New(),
			UserID:         userUUID,
			ActivityType:   enriched.ActivityType,
			Category:       category,
			Scope:          enriched.Scope,
			Quantity:       enriched.Quantity,
			Unit:           unit,
			EmissionFactor: enriched.EmissionFactor,
			TotalEmissions: enriched.TotalEmissions,
			Date:           date,
			Description:    description,
			Source:         "bulk",
		})
	}

	if len(records) == 0 {
		return domain.ImportCSVResponse{Skipped: skipped}, domain.ErrEmptyCSV
	}

	if err := s.emissionRepository.CreateEmissionRecords(ctx, records); err != nil {
		return domain.ImportCSVResponse{}, err
	}

	return domain.ImportCSVResponse{Inserted: len(records), Skipped: skipped}, nil
}

// backfillCategory fills an absent category from the factor table so scope
// reports do not bucket everything under an empty key.
func backfillCategory(category, activityType string, table factor.Table) string {
	if category != "" {
		return category
	}
	if entry, ok := table.Lookup(activityType); ok && entry.Category != "" {
		return entry.Category
	}
	return "Unknown"
}

func toEmissionResponse(record *entities.EmissionRecord) domain.EmissionResponse {
	return domain.EmissionResponse{
		ID:             record.ID.String(),
		ActivityType:   record.ActivityType,
		Category:       record.Category,
		Scope:          record.Scope,
		ScopeLabel:     NormalizeScopeLabel(record.Scope),
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		EmissionFactor: record.EmissionFactor,
		TotalEmissions: record.TotalEmissions,
		Date:           record.Date,
		Description:    record.Description,
		Source:         record.Source,
		CreatedAt:      record.CreatedAt,
	}
}
