package transaction_fx

import (
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"esale/cmd/fx/basket_fx"
	"esale/internal/repositories"
	"esale/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideTransactionService)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	basketRepo repositories.BasketRepositoryInterface,
	serviceRepo repositories.ServiceRepositoryInterface,
	notifier services.NotificationServiceInterface,
	taxRate basket_fx.TaxRate,
) services.TransactionServiceInterface {
	return services.NewTransactionService(txnRepo, basketRepo, serviceRepo, notifier, decimal.Decimal(taxRate))
}
