package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a catalog entry offered for sale. Catalog rows are read-only
// through the API; writes happen out of band.
type Service struct {
	BaseModel
	Title       string `gorm:"size:255;not null"`
	Logo        string `gorm:"size:512"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true;index"`

	Types []ServiceType `gorm:"foreignKey:ServiceID"`
}

// ServiceType is a priced variant of a Service. Price must never change the
// totals of transactions that already snapshotted it.
type ServiceType struct {
	BaseModel
	ServiceID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"size:255;not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsActive      bool            `gorm:"default:true"`
	IsRecommended bool            `gorm:"default:false"`

	Service *Service `gorm:"foreignKey:ServiceID"`
}
