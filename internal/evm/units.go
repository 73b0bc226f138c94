package evm

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUnits renders an integer amount of the smallest unit as a whole-coin decimal string.
// The fractional part is trimmed of trailing zeros but always keeps one digit,
// so 10^18 wei with 18 decimals is "1.0".
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		value = new(big.Int)
	}
	text := decimal.NewFromBigInt(value, -decimals).String()
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
