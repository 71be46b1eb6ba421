package handlers

import (
	"context"

	"github.com/harentsoaR/clinic-records/internal/models"
	"github.com/harentsoaR/clinic-records/internal/services"
	"go.uber.org/zap"
)

// RecordService is what the HTTP layer needs from the record service.
type RecordService interface {
	CreateUser(ctx context.Context, in services.CreateUserInput) (*models.User, error)
	CreatePatient(ctx context.Context, in services.CreatePatientInput) (*models.User, error)
	GetUsers(ctx context.Context, q models.ListQuery) (*models.ListResult, error)
	GetUserDetails(ctx context.Context, id string) (*models.User, error)
	UpdateUserDetails(ctx context.Context, id string, in services.UpdateDetailsInput) (*models.User, error)
	UpdatePatient(ctx context.Context, id string, body map[string]any) (*models.User, error)
	UpdateStatus(ctx context.Context, id string, in services.UpdateStatusInput) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (*models.User, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Records RecordService
	Store   Pinger
	Logger  *zap.Logger
}

func NewHandler(records RecordService, store Pinger, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Records: records,
		Store:   store,
		Logger:  logger,
	}
}
