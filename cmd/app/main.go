package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"esale/cmd/fx/basket_fx"
	"esale/cmd/fx/catalog_fx"
	"esale/cmd/fx/controllers_fx"
	"esale/cmd/fx/db_fx"
	"esale/cmd/fx/mail_fx"
	"esale/cmd/fx/profile_fx"
	"esale/cmd/fx/transaction_fx"
	"esale/internal/api/controllers"
	"esale/internal/infra"
	"esale/internal/models/db_models"
	"esale/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		basket_fx.Module,
		transaction_fx.Module,
		profile_fx.Module,
		mail_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Service{},
		&db_models.ServiceType{},
		&db_models.Basket{},
		&db_models.BasketItem{},
		&db_models.Transaction{},
		&db_models.Profile{},
		&db_models.Contact{},
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	servicesController *controllers.ServicesController,
	basketsController *controllers.BasketsController,
	transactionsController *controllers.TransactionsController,
	profilesController *controllers.ProfilesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, servicesController, basketsController, transactionsController, profilesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	servicesController *controllers.ServicesController,
	basketsController *controllers.BasketsController,
	transactionsController *controllers.TransactionsController,
	profilesController *controllers.ProfilesController) {

	api := r.Group("/api")

	servicesGroup := api.Group("/services")
	servicesGroup.GET("/", servicesController.ListServicesHandler)
	servicesGroup.GET("/:id", servicesController.GetServiceHandler)

	typesGroup := api.Group("/types")
	typesGroup.GET("/", servicesController.ListTypesHandler)
	typesGroup.GET("/:id", servicesController.GetTypeHandler)

	basketsGroup := api.Group("/baskets")
	basketsGroup.POST("/", basketsController.CreateBasketHandler)
	basketsGroup.GET("/", basketsController.ListBasketsHandler)
	basketsGroup.GET("/:id", basketsController.GetBasketHandler)
	basketsGroup.POST("/:id/add_item", basketsController.AddItemHandler)
	basketsGroup.POST("/:id/remove_item", basketsController.RemoveItemHandler)
	basketsGroup.POST("/:id/update_item_quantity", basketsController.UpdateItemQuantityHandler)

	transactionsGroup := api.Group("/transactions")
	transactionsGroup.POST("/", transactionsController.CreateTransactionHandler)
	transactionsGroup.GET("/", transactionsController.ListTransactionsHandler)
	transactionsGroup.GET("/:id", transactionsController.GetTransactionHandler)
	transactionsGroup.POST("/:id/process_payment", transactionsController.ProcessPaymentHandler)
	transactionsGroup.POST("/:id/send_email_notification", transactionsController.SendEmailNotificationHandler)

	profilesGroup := api.Group("/profiles")
	profilesGroup.POST("/", profilesController.CreateProfileHandler)
	profilesGroup.GET("/", profilesController.ListProfilesHandler)
	profilesGroup.GET("/:name", profilesController.GetProfileHandler)
	profilesGroup.PUT("/:name", profilesController.UpdateProfileHandler)
	profilesGroup.DELETE("/:name", profilesController.DeleteProfileHandler)

	contactsGroup := api.Group("/contacts")
	contactsGroup.POST("/", profilesController.CreateContactHandler)
	contactsGroup.GET("/", profilesController.ListContactsHandler)
	contactsGroup.GET("/:id", profilesController.GetContactHandler)
	contactsGroup.PUT("/:id", profilesController.UpdateContactHandler)
	contactsGroup.DELETE("/:id", profilesController.DeleteContactHandler)
}
