package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esale/internal/models/db_models"
)

type ServiceRepositoryInterface interface {
	GetAllServices(ctx context.Context) ([]db_models.Service, error)
	GetServiceByID(ctx context.Context, serviceID uuid.UUID) (*db_models.Service, error)
	GetAllTypes(ctx context.Context) ([]db_models.ServiceType, error)
	GetTypeByID(ctx context.Context, typeID uuid.UUID) (*db_models.ServiceType, error)
}

func NewServiceRepository(db *gorm.DB) ServiceRepositoryInterface {
	return &ServiceRepository{db: db}
}

type ServiceRepository struct {
	db *gorm.DB
}

func (r *ServiceRepository) GetAllServices(ctx context.Context) ([]db_models.Service, error) {
	var services []db_models.Service
	err := r.db.WithContext(ctx).Preload("Types").Order("created_at DESC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, serviceID uuid.UUID) (*db_models.Service, error) {
	var service db_models.Service
	err := r.db.WithContext(ctx).Preload("Types").Where("id = ?", serviceID).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) GetAllTypes(ctx context.Context) ([]db_models.ServiceType, error) {
	var types []db_models.ServiceType
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *ServiceRepository) GetTypeByID(ctx context.Context, typeID uuid.UUID) (*db_models.ServiceType, error) {
	var serviceType db_models.ServiceType
	err := r.db.WithContext(ctx).Where("id = ?", typeID).First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serviceType, nil
}
