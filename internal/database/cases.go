package database

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateFilter marks an unparseable date query parameter so handlers
// can answer 400 instead of 500.
var ErrInvalidDateFilter = errors.New("invalid date filter, expected YYYY-MM-DD")

// CaseFilters narrows ListCases results. Empty fields match everything.
type CaseFilters struct {
	EmergencyType string
	Priority      string
	Date          string
}

func (s *service) CreateCase(ctx context.Context, record *CaseRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *service) ListCases(ctx context.Context, filters CaseFilters) ([]CaseRecord, error) {
	query := s.db.WithContext(ctx).Model(&CaseRecord{})

	if value := strings.TrimSpace(filters.EmergencyType); value != "" {
		query = query.Where("emergency_type = ?", value)
	}
	if value := strings.TrimSpace(filters.Priority); value != "" {
		query = query.Where("priority = ?", value)
	}
	if value := strings.TrimSpace(filters.Date); value != "" {
		day, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		query = query.Where("created_at >= ? AND created_at < ?", day, day.Add(24*time.Hour))
	}

	var records []CaseRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *service) ListHistorical(ctx context.Context) ([]HistoricalRequest, error) {
	var records []HistoricalRequest
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *service) HospitalsByCity(ctx context.Context, city string) ([]Hospital, error) {
	var hospitals []Hospital
	err := s.db.WithContext(ctx).
		Where("LOWER(city) = ?", strings.ToLower(strings.TrimSpace(city))).
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}
