package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

var exportHeaders = []string{
	"User ID", "Name", "Email", "Bio", "Location", "Score", "Test Count",
	"Phone No", "User Type", "Degree", "Institution", "Year", "Created At",
}

// ExportProfiles renders the filtered profile list as an xlsx workbook.
func (s *exportService) ExportProfiles(ctx context.Context, filters repositories.ProfileFilters) (*bytes.Buffer, error) {
	s.logger.Info("Exporting profiles", "user_type", filters.UserType)

	users, err := s.repo.Profile().List(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Profiles"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, user := range users {
		row := exportRow(user)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("Profiles exported", "count", len(users))

	return buf, nil
}

func exportRow(user *models.User) []interface{} {
	var degree, institution string
	var year interface{}
	if len(user.Education) > 0 {
		degree = user.Education[0].Degree
		institution = user.Education[0].Institution
		year = user.Education[0].Year
	}

	return []interface{}{
		user.UserID,
		user.Name,
		user.Email,
		stringOrEmpty(user.Bio),
		stringOrEmpty(user.Location),
		user.Score,
		user.TestCount,
		stringOrEmpty(user.PhoneNo),
		string(user.UserType),
		degree,
		institution,
		year,
		user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
