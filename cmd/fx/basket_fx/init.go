package basket_fx

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"esale/internal/repositories"
	"esale/internal/services"
)

var Module = fx.Provide(
	provideBasketRepo, provideTaxRate, provideBasketService)

func provideBasketRepo(db *gorm.DB) repositories.BasketRepositoryInterface {
	return repositories.NewBasketRepository(db)
}

// TaxRate is a fraction of the subtotal, e.g. "0.10" for 10%.
type TaxRate decimal.Decimal

func provideTaxRate() TaxRate {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return TaxRate(services.DefaultTaxRate)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		log.Printf("Invalid TAX_RATE %q, falling back to default", raw)
		return TaxRate(services.DefaultTaxRate)
	}
	return TaxRate(rate)
}

func provideBasketService(
	basketRepo repositories.BasketRepositoryInterface,
	serviceRepo repositories.ServiceRepositoryInterface,
	taxRate TaxRate,
) services.BasketServiceInterface {
	return services.NewBasketService(basketRepo, serviceRepo, decimal.Decimal(taxRate))
}
