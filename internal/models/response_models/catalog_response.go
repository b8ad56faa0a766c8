package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"esale/internal/models/db_models"
)

type ServiceResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Logo        string                `json:"logo"`
	Description string                `json:"description"`
	IsActive    bool                  `json:"is_active"`
	Types       []ServiceTypeResponse `json:"types,omitempty"`
	CreatedAt   int64                 `json:"created_at"`
}

type ServiceTypeResponse struct {
	ID            uuid.UUID       `json:"id"`
	ServiceID     uuid.UUID       `json:"service_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	IsActive      bool            `json:"is_active"`
	IsRecommended bool            `json:"is_recommended"`
}

func NewServiceResponse(service *db_models.Service) ServiceResponse {
	types := make([]ServiceTypeResponse, 0, len(service.Types))
	for i := range service.Types {
		types = append(types, NewServiceTypeResponse(&service.Types[i]))
	}
	return ServiceResponse{
		ID:          service.ID,
		Title:       service.Title,
		Logo:        service.Logo,
		Description: service.Description,
		IsActive:    service.IsActive,
		Types:       types,
		CreatedAt:   service.CreatedAt,
	}
}

func NewServiceTypeResponse(serviceType *db_models.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:            serviceType.ID,
		ServiceID:     serviceType.ServiceID,
		Name:          serviceType.Name,
		Description:   serviceType.Description,
		Price:         serviceType.Price,
		IsActive:      serviceType.IsActive,
		IsRecommended: serviceType.IsRecommended,
	}
}

func NewServiceListResponse(services []db_models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, NewServiceResponse(&services[i]))
	}
	return out
}

func NewServiceTypeListResponse(types []db_models.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, NewServiceTypeResponse(&types[i]))
	}
	return out
}
