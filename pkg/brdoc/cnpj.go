package brdoc

import "regexp"

var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

var cnpjWeightsFirst = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
var cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidCNPJ reports whether s is a CNPJ in the NN.NNN.NNN/NNNN-NN
// format with correct check digits.
func ValidCNPJ(s string) bool {
	if !cnpjPattern.MatchString(s) {
		return false
	}

	digits := make([]int, 0, 14)
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

	if cnpjCheckDigit(digits[:12], cnpjWeightsFirst) != digits[12] {
		return false
	}
	return cnpjCheckDigit(digits[:13], cnpjWeightsSecond) == digits[13]
}

// ValidDocument accepts either a CPF or a CNPJ, both formatted. Client
// and supplier records hold whichever fits the counterparty.
func ValidDocument(s string) bool {
	return ValidCPF(s) || ValidCNPJ(s)
}

func cnpjCheckDigit(digits []int, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
