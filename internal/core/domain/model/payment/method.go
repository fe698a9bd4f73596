package payment

import (
	"storefront/internal/pkg/errs"
)

// Method represents how a transaction was paid.
type Method int

const (
	// MethodUnknown is the zero value and is never valid.
	MethodUnknown Method = iota
	CreditCard
	DebitCard
	PayPal
	BankTransfer
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "Unknown",
		CreditCard:    "Credit Card",
		DebitCard:     "Debit Card",
		PayPal:        "PayPal",
		BankTransfer:  "Bank Transfer",
	}
}

func getValidMethodStrings() map[string]Method {
	return map[string]Method{
		"Credit Card":   CreditCard,
		"Debit Card":    DebitCard,
		"PayPal":        PayPal,
		"Bank Transfer": BankTransfer,
	}
}

// MethodFromString parses a payment method from its storage representation.
func MethodFromString(value string) (Method, error) {
	if method, ok := getValidMethodStrings()[value]; ok {
		return method, nil
	}
	return MethodUnknown, errs.NewValueIsInvalidError("payment method")
}

// Validate reports whether the method is one of the known values.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m.String()]; !ok {
		return errs.NewValueIsInvalidError("payment method")
	}
	return nil
}

func (m Method) String() string {
	if value, ok := getMethodStrings()[m]; ok {
		return value
	}
	return "Unknown"
}
