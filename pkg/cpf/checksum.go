package cpf

import (
	"errors"
	"strconv"
	"strings"
)

// ErrWrongBaseLength is returned by CheckDigits when the base does not have 9 digits.
var ErrWrongBaseLength = errors.New("CPF base must have 9 digits to compute check digits")

// DigitCalculation records every intermediate value of one check digit pass.
//
// Invariants:
//   - len(Digits) == len(Factors) == len(Products)
//   - Factors descend by one and end at 2
//   - Remainder == Sum % 11
type DigitCalculation struct {
	Digits    []int `json:"digits" yaml:"digits,flow"`
	Factors   []int `json:"factors" yaml:"factors,flow"`
	Products  []int `json:"products" yaml:"products,flow"`
	Sum       int   `json:"sum" yaml:"sum"`
	Remainder int   `json:"remainder" yaml:"remainder"`
	DV        int   `json:"dv" yaml:"dv"`
}

// CheckDigits returns the two check digits for a 9-digit CPF base. Non-digit
// characters are discarded first, as in New.
func CheckDigits(base string) (string, error) {
	a := analyze(base)
	if a.Length != baseLength {
		return "", ErrWrongBaseLength
	}
	dv1, dv2 := checkDigits(toDigits(a.Cleaned))

	var b strings.Builder
	b.WriteString(strconv.Itoa(dv1.DV))
	b.WriteString(strconv.Itoa(dv2.DV))
	return b.String(), nil
}

// checkDigits runs both passes over a 9-digit base. The second pass weighs
// the base followed by the first check digit.
func checkDigits(base []int) (DigitCalculation, DigitCalculation) {
	dv1 := calculateDigit(base, baseLength+1)

	extended := make([]int, 0, baseLength+1)
	extended = append(extended, base...)
	extended = append(extended, dv1.DV)
	dv2 := calculateDigit(extended, baseLength+2)

	return dv1, dv2
}

// calculateDigit weighs digits with factors factorStart, factorStart-1, ... 2.
// The factor count follows len(digits); callers pick factorStart = len(digits)+1.
func calculateDigit(digits []int, factorStart int) DigitCalculation {
	calc := DigitCalculation{
		Digits:   append([]int(nil), digits...),
		Factors:  make([]int, 0, len(digits)),
		Products: make([]int, 0, len(digits)),
	}

	for i, d := range digits {
		factor := factorStart - i
		if factor < 2 {
			break
		}
		product := d * factor
		calc.Factors = append(calc.Factors, factor)
		calc.Products = append(calc.Products, product)
		calc.Sum += product
	}

	calc.Remainder = calc.Sum % 11
	if calc.Remainder < 2 {
		calc.DV = 0
	} else {
		calc.DV = 11 - calc.Remainder
	}
	return calc
}
