// Package cpf validates Brazilian CPF (Cadastro de Pessoas Físicas) numbers.
//
// A CPF has 11 digits; the last two are check digits computed from the
// preceding ones with a weighted sum modulo 11. Input may carry the usual
// punctuation ("529.982.247-25") or surrounding whitespace: everything that
// is not a digit is discarded before validation. Any Unicode decimal digit
// counts, so full-width "５２９９８２２４７２５" is the same CPF as "52998224725".
//
// Domain Purity: This package contains only pure functions over the input
// string. No I/O, no context.Context, no shared state. Validators may be
// used from any number of goroutines.
package cpf

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length is the number of digits in a CPF.
const Length = 11

// baseLength is the number of digits that precede the check digits.
const baseLength = 9

// ErrWrongLength is returned by Visualize when the input does not have 11 digits.
var ErrWrongLength = errors.New("CPF must have 11 digits to compute check digits")

// Analysis describes the shape of a raw input. It is computed once when the
// validator is built.
//
// Invariants:
//   - Cleaned holds only the decimal digits (Unicode Nd) of Raw, in their original order
//   - Length is the number of digits in Cleaned, not its byte length
type Analysis struct {
	Raw             string `json:"raw" yaml:"raw"`
	Cleaned         string `json:"cleaned" yaml:"cleaned"`
	Length          int    `json:"length" yaml:"length"`
	HasOnlyDigits   bool   `json:"has_only_digits" yaml:"has_only_digits"`
	IsFormatted     bool   `json:"is_formatted" yaml:"is_formatted"`
	HasInvalidChars bool   `json:"has_invalid_chars" yaml:"has_invalid_chars"`
}

// Diagnostics carries both check digit calculations. Attached to a Result
// only in development mode.
type Diagnostics struct {
	DV1 DigitCalculation `json:"dv1" yaml:"dv1"`
	DV2 DigitCalculation `json:"dv2" yaml:"dv2"`
}

// Visualization is the outcome of Validator.Visualize.
type Visualization = Diagnostics

// Result is the verdict of Validator.Validate.
//
// Reason is empty iff Valid is true. Diagnostics is nil unless the validator
// was built with WithDevelopment and the checksum stage was reached.
type Result struct {
	Valid       bool         `json:"valid" yaml:"valid"`
	Analysis    Analysis     `json:"analysis" yaml:"analysis"`
	Reason      Reason       `json:"reason,omitempty" yaml:"reason,omitempty"`
	Diagnostics *Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Validator validates a single raw CPF input.
type Validator struct {
	development bool
	analysis    Analysis
}

// Option configures a Validator.
type Option func(*Validator)

// WithDevelopment attaches check digit diagnostics to every Result.
func WithDevelopment() Option {
	return func(v *Validator) {
		v.development = true
	}
}

// New builds a validator for raw. It never fails: empty, non-numeric or
// oversized input all produce a well-formed Analysis.
func New(raw string, opts ...Option) *Validator {
	v := &Validator{analysis: analyze(raw)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// IsValid reports whether raw is a valid CPF.
func IsValid(raw string) bool {
	return New(raw).Validate().Valid
}

// Analysis returns the input analysis computed at construction.
func (v *Validator) Analysis() Analysis {
	return v.analysis
}

// Development reports whether diagnostics are attached to results.
func (v *Validator) Development() bool {
	return v.development
}

// Validate runs the length, repeated-digit and checksum checks in that order,
// stopping at the first failure.
func (v *Validator) Validate() Result {
	result := Result{Analysis: v.analysis}

	if v.analysis.Length != Length {
		result.Reason = ReasonWrongLength
		return result
	}

	digits := toDigits(v.analysis.Cleaned)
	if allEqual(digits) {
		result.Reason = ReasonAllDigitsIdentical
		return result
	}

	dv1, dv2 := checkDigits(digits[:baseLength])
	result.Valid = dv1.DV == digits[9] && dv2.DV == digits[10]

	if v.development {
		result.Diagnostics = &Diagnostics{DV1: dv1, DV2: dv2}
	}
	if !result.Valid {
		result.Reason = ReasonCheckDigitsMismatch
	}
	return result
}

// Visualize exposes both check digit calculations regardless of the
// development flag. Repeated digits are not rejected here.
func (v *Validator) Visualize() (Visualization, error) {
	if v.analysis.Length != Length {
		return Visualization{}, ErrWrongLength
	}
	dv1, dv2 := checkDigits(toDigits(v.analysis.Cleaned)[:baseLength])
	return Visualization{DV1: dv1, DV2: dv2}, nil
}

// String shows the raw input and the development flag.
func (v *Validator) String() string {
	return fmt.Sprintf("CPF(value=%q, development=%t)", v.analysis.Raw, v.development)
}

func analyze(raw string) Analysis {
	cleaned := strings.Map(func(r rune) rune {
		if isDigit(r) {
			return r
		}
		return -1
	}, raw)

	hasOnlyDigits := raw != "" && cleaned == raw

	hasInvalidChars := false
	if !hasOnlyDigits {
		hasInvalidChars = strings.IndexFunc(raw, func(r rune) bool {
			return !isDigit(r) && r != '.' && r != '-' && !unicode.IsSpace(r)
		}) >= 0
	}

	return Analysis{
		Raw:             raw,
		Cleaned:         cleaned,
		Length:          utf8.RuneCountInString(cleaned),
		HasOnlyDigits:   hasOnlyDigits,
		IsFormatted:     strings.ContainsAny(raw, ".-"),
		HasInvalidChars: hasInvalidChars,
	}
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// digitValue maps a decimal digit to 0-9. Every Unicode digit set is a run of
// ten consecutive code points starting at zero, and adjacent sets continue
// the run, so the value is the distance from the run start modulo 10.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

func toDigits(cleaned string) []int {
	digits := make([]int, 0, len(cleaned))
	for _, r := range cleaned {
		digits = append(digits, digitValue(r))
	}
	return digits
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
