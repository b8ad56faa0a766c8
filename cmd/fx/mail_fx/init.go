package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"esale/internal/services"
)

var Module = fx.Provide(provideMailService, provideNotifier)

func provideMailService() services.IMailService {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "eSalesOne",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName: "eSalesOne",
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

func provideNotifier(mail services.IMailService) services.NotificationServiceInterface {
	return services.NewTransactionNotifier(mail)
}
