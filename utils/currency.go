package utils

import (
	"fmt"
	"strconv"
)

// FormatRupees renders a whole-rupee amount with thousands separators,
// e.g. 2450 -> "Rs. 2,450".
func FormatRupees(amount int) string {
	digits := strconv.Itoa(amount)
	negative := false
	if amount < 0 {
		negative = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return fmt.Sprintf("Rs. -%s", out)
	}
	return fmt.Sprintf("Rs. %s", out)
}
