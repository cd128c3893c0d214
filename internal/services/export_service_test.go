package services

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
	"github.com/SAP-F-2025/profile-service/internal/validator"
)

func TestExportService_ExportProfiles(t *testing.T) {
	repo := newMockRepository()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	profileSvc := NewProfileService(repo, nil, logger, validator.New())

	req := validCreateRequest()
	req.Education = &models.EducationRequest{Degree: "BSc", Institution: "MIT", Year: 2020}
	_, err := profileSvc.Create(context.Background(), req)
	require.NoError(t, err)

	svc := NewExportService(repo, logger)
	buf, err := svc.ExportProfiles(context.Background(), repositories.ProfileFilters{})
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Profiles")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one profile row")
	assert.Equal(t, "User ID", rows[0][0])
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "jane@x.com", rows[1][2])
	assert.Equal(t, "BSc", rows[1][9])
}
