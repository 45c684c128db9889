// Package format renders money and dates the way the product displays
// them: Brazilian real with comma decimals, day-first dates.
package format

import (
	"fmt"
	"strings"
	"time"
)

// BRL renders an amount in centavos as "R$ 1.234,56". Negative amounts
// carry a leading minus: "-R$ 10,00".
func BRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// Date renders a time as DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTime renders a time as DD/MM/YYYY HH:MM.
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
