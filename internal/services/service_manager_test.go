package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/SAP-F-2025/profile-service/internal/validator"
)

func TestNewDefaultServiceManager(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	manager := NewDefaultServiceManager(newMockRepository(), nil, logger, validator.New())

	if err := manager.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if manager.Profile() == nil {
		t.Error("Profile() returned nil")
	}
	if manager.Health() == nil {
		t.Error("Health() returned nil")
	}
	if manager.Export() == nil {
		t.Error("Export() returned nil")
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
