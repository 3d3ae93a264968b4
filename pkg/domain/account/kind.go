package account

import (
	"fmt"
	"strings"
)

// Kind identifies an account variant.
type Kind string

// Account variants.
const (
	KindSavings    Kind = "savings"
	KindInvestment Kind = "investment"
	KindCheque     Kind = "cheque"
)

// storeNames are the variant names used by the text store.
var storeNames = map[Kind]string{
	KindSavings:    "SavingsAccount",
	KindInvestment: "InvestmentAccount",
	KindCheque:     "ChequeAccount",
}

// ParseKind resolves a case-insensitive type name such as "Savings" into a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := storeNames[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, name)
	}
	return k, nil
}

// StoreName returns the name the text store writes for this variant.
func (k Kind) StoreName() string {
	return storeNames[k]
}

// KindFromStoreName is the inverse of StoreName.
func KindFromStoreName(name string) (Kind, bool) {
	for k, n := range storeNames {
		if n == name {
			return k, true
		}
	}
	return "", false
}

func (k Kind) String() string {
	return string(k)
}
