// Package brdoc validates Brazilian identification documents (CPF and
// CNPJ) in their formatted representations.
package brdoc

import "regexp"

var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// ValidCPF reports whether s is a CPF in the NNN.NNN.NNN-NN format
// with correct check digits. Sequences of a single repeated digit are
// rejected even though their checksum is formally valid.
func ValidCPF(s string) bool {
	if !cpfPattern.MatchString(s) {
		return false
	}

	digits := make([]int, 0, 11)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	same := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	if cpfCheckDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return cpfCheckDigit(digits[:10], 11) == digits[10]
}

func cpfCheckDigit(digits []int, weight int) int {
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
