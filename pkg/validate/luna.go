package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const maxPurchaseIDLength = 32

// IsPurchaseID reports whether s is a purchase id issued by the intake
// front-end: a digit string with a valid Luhn check digit.
func IsPurchaseID(s string) bool {
	if s == "" || len(s) > maxPurchaseIDLength {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}
