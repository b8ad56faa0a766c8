package services

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// PaymentOutcome is the result of the simulated gateway. No external call is
// ever made; reserved single-digit card numbers select the outcome.
type PaymentOutcome string

const (
	OutcomeApproved       PaymentOutcome = "APPROVED"
	OutcomeDeclined       PaymentOutcome = "DECLINED"
	OutcomeGatewayFailure PaymentOutcome = "GATEWAY_FAILURE"
)

const (
	cardApproved       = "1"
	cardDeclined       = "2"
	cardGatewayFailure = "3"
)

// NormalizeCardNumber strips the separators users commonly type.
func NormalizeCardNumber(raw string) string {
	cleaned := strings.ReplaceAll(raw, " ", "")
	return strings.ReplaceAll(cleaned, "-", "")
}

// SimulatePayment maps a card number to a deterministic outcome:
// "1" approved, "2" declined, "3" gateway failure, anything else approved.
func SimulatePayment(cardNumber string) PaymentOutcome {
	switch NormalizeCardNumber(cardNumber) {
	case cardDeclined:
		return OutcomeDeclined
	case cardGatewayFailure:
		return OutcomeGatewayFailure
	default:
		return OutcomeApproved
	}
}

// ValidateCardNumber returns the normalized card number. The three magic
// test numbers bypass the length/format rules.
func ValidateCardNumber(raw string) (string, error) {
	cleaned := NormalizeCardNumber(raw)

	switch cleaned {
	case cardApproved, cardDeclined, cardGatewayFailure:
		return cleaned, nil
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", errors.New("card number must contain only digits")
		}
	}
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return "", errors.New("card number must be between 13 and 19 digits")
	}
	return cleaned, nil
}

// ValidateExpiryDate checks the MM/YYYY format and that the card is valid
// through at least the end of the current month.
func ValidateExpiryDate(raw string, now time.Time) error {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 4 {
		return errors.New("expiry date must be in MM/YYYY format")
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return errors.New("expiry date must be in MM/YYYY format")
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return errors.New("expiry date must be in MM/YYYY format")
	}

	if month < 1 || month > 12 {
		return errors.New("month must be between 01 and 12")
	}

	// The card is good through the last instant of the expiry month.
	expiresAt := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if !now.Before(expiresAt) {
		return errors.New("expiry date must be in the future")
	}
	return nil
}

func ValidateCVV(raw string) error {
	if len(raw) != 3 {
		return errors.New("CVV must be exactly 3 digits")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return errors.New("CVV must be exactly 3 digits")
		}
	}
	return nil
}
