package order

import (
	"regexp"
	"strings"
)

var cardPatterns = []struct {
	cardType string
	pattern  *regexp.Regexp
}{
	{"VISA", regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{"MASTERCARD", regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	{"AMEX", regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{"DINERS", regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`)},
	{"DISCOVER", regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	{"JCB", regexp.MustCompile(`^(?:2131|1800|35\d{3})\d{11}$`)},
}

// Card is a payment card. The core only copies it into the payment record.
type Card struct {
	Number       string
	Expiration   string
	SecurityCode string
	PostalCode   string
	CardType     string
}

// NewCard builds a Card and derives its type from the number.
func NewCard(number, expiration, securityCode, postalCode string) Card {
	number = strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	return Card{
		Number:       number,
		Expiration:   expiration,
		SecurityCode: securityCode,
		PostalCode:   postalCode,
		CardType:     CardType(number),
	}
}

// CardType returns the issuer name for a card number, or "" when unknown.
func CardType(number string) string {
	for _, p := range cardPatterns {
		if p.pattern.MatchString(number) {
			return p.cardType
		}
	}
	return ""
}

func cashPayment() map[string]any {
	return map[string]any{"Type": "Cash"}
}

func (c Card) payment(amount float64) map[string]any {
	return map[string]any{
		"Type":         "CreditCard",
		"Expiration":   c.Expiration,
		"Amount":       amount,
		"CardType":     c.CardType,
		"Number":       c.Number,
		"SecurityCode": c.SecurityCode,
		"PostalCode":   c.PostalCode,
	}
}
