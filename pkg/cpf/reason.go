package cpf

// Reason explains why a CPF was rejected. The zero value means no rejection.
type Reason string

const (
	ReasonWrongLength         Reason = "wrong_length"
	ReasonAllDigitsIdentical  Reason = "all_digits_identical"
	ReasonCheckDigitsMismatch Reason = "check_digits_mismatch"
)

// Reasons lists every rejection reason in the order Validate checks them.
func Reasons() []Reason {
	return []Reason{ReasonWrongLength, ReasonAllDigitsIdentical, ReasonCheckDigitsMismatch}
}

func (r Reason) String() string {
	return string(r)
}

// Message is the user-facing explanation of the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonWrongLength:
		return "CPF deve ter 11 dígitos."
	case ReasonAllDigitsIdentical:
		return "CPF com todos os dígitos iguais é inválido."
	case ReasonCheckDigitsMismatch:
		return "Dígitos verificadores não conferem."
	default:
		return ""
	}
}
