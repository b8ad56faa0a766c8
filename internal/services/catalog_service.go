package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"esale/internal/models/db_models"
	"esale/internal/repositories"
	"esale/pkg/utils"
)

type CatalogServiceInterface interface {
	ListServices(ctx context.Context) ([]db_models.Service, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*db_models.Service, error)
	ListTypes(ctx context.Context) ([]db_models.ServiceType, error)
	GetType(ctx context.Context, typeID uuid.UUID) (*db_models.ServiceType, error)
}

func NewCatalogService(serviceRepo repositories.ServiceRepositoryInterface) CatalogServiceInterface {
	return &catalogService{serviceRepo: serviceRepo}
}

type catalogService struct {
	serviceRepo repositories.ServiceRepositoryInterface
}

func (s *catalogService) ListServices(ctx context.Context) ([]db_models.Service, error) {
	return s.serviceRepo.GetAllServices(ctx)
}

func (s *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*db_models.Service, error) {
	service, err := s.serviceRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, utils.ErrNotFound)
	}
	return service, nil
}

func (s *catalogService) ListTypes(ctx context.Context) ([]db_models.ServiceType, error) {
	return s.serviceRepo.GetAllTypes(ctx)
}

func (s *catalogService) GetType(ctx context.Context, typeID uuid.UUID) (*db_models.ServiceType, error) {
	serviceType, err := s.serviceRepo.GetTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, fmt.Errorf("service type %s: %w", typeID, utils.ErrNotFound)
	}
	return serviceType, nil
}
