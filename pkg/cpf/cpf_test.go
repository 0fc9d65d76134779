package cpf_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"cpfcheck/pkg/cpf"
)

type ValidatorSuite struct {
	suite.Suite
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) TestKnownVectors() {
	tests := []struct {
		name   string
		input  string
		valid  bool
		reason cpf.Reason
	}{
		{"unmasked", "52998224725", true, ""},
		{"masked", "529.982.247-25", true, ""},
		{"masked with surrounding whitespace", " 529.982.247-25 ", true, ""},
		{"wrong second check digit", "52998224724", false, cpf.ReasonCheckDigitsMismatch},
		{"wrong first check digit", "52998224735", false, cpf.ReasonCheckDigitsMismatch},
		{"all ones", "11111111111", false, cpf.ReasonAllDigitsIdentical},
		{"all ones masked", "111.111.111-11", false, cpf.ReasonAllDigitsIdentical},
		{"all zeros", "00000000000", false, cpf.ReasonAllDigitsIdentical},
		{"letter dropped", "529.982.247-2A", false, cpf.ReasonWrongLength},
		{"empty", "", false, cpf.ReasonWrongLength},
		{"too long", "529982247250", false, cpf.ReasonWrongLength},
		{"no digits", "abc.def-gh", false, cpf.ReasonWrongLength},
		{"full-width digits", "５２９９８２２４７２５", true, ""},
		{"arabic-indic digits", "٥٢٩٩٨٢٢٤٧٢٥", true, ""},
		{"full-width digits wrong check digit", "５２９９８２２４７２４", false, cpf.ReasonCheckDigitsMismatch},
		{"mixed scripts all identical", "１1１1١1１1１1１", false, cpf.ReasonAllDigitsIdentical},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result := cpf.New(tt.input).Validate()
			s.Equal(tt.valid, result.Valid)
			s.Equal(tt.reason, result.Reason)
			s.Nil(result.Diagnostics)
			s.Equal(tt.valid, cpf.IsValid(tt.input))
		})
	}
}

func (s *ValidatorSuite) TestAnalysis() {
	s.Run("digits only", func() {
		a := cpf.New("52998224725").Analysis()
		s.Equal("52998224725", a.Cleaned)
		s.Equal(11, a.Length)
		s.True(a.HasOnlyDigits)
		s.False(a.IsFormatted)
		s.False(a.HasInvalidChars)
	})

	s.Run("formatted with whitespace", func() {
		a := cpf.New(" 529.982.247-25 ").Analysis()
		s.Equal(" 529.982.247-25 ", a.Raw)
		s.Equal("52998224725", a.Cleaned)
		s.False(a.HasOnlyDigits)
		s.True(a.IsFormatted)
		s.False(a.HasInvalidChars)
	})

	s.Run("invalid characters", func() {
		a := cpf.New("529.982.247-2A").Analysis()
		s.Equal("5299822472", a.Cleaned)
		s.Equal(10, a.Length)
		s.True(a.IsFormatted)
		s.True(a.HasInvalidChars)
	})

	s.Run("empty input", func() {
		a := cpf.New("").Analysis()
		s.Empty(a.Cleaned)
		s.Zero(a.Length)
		s.False(a.HasOnlyDigits)
		s.False(a.IsFormatted)
		s.False(a.HasInvalidChars)
	})

	s.Run("non-ascii decimal digits count by rune", func() {
		a := cpf.New("５２９.９８２").Analysis()
		s.Equal("５２９９８２", a.Cleaned)
		s.Equal(6, a.Length)
		s.False(a.HasOnlyDigits)
		s.True(a.IsFormatted)
		s.False(a.HasInvalidChars)
	})

	s.Run("superscripts are not decimal digits", func() {
		a := cpf.New("5²").Analysis()
		s.Equal("5", a.Cleaned)
		s.True(a.HasInvalidChars)
	})
}

func (s *ValidatorSuite) TestReasonsAreExclusive() {
	inputs := []string{"52998224725", "52998224724", "11111111111", "123", "", "529.982.247-2A"}
	for _, input := range inputs {
		result := cpf.New(input).Validate()
		if result.Valid {
			s.Empty(result.Reason, input)
			continue
		}
		s.Contains(cpf.Reasons(), result.Reason, input)
		s.NotEmpty(result.Reason.Message(), input)
	}
}

func (s *ValidatorSuite) TestValidateIsIdempotent() {
	v := cpf.New("529.982.247-25", cpf.WithDevelopment())
	first := v.Validate()
	second := v.Validate()
	s.Equal(first, second)
}

func (s *ValidatorSuite) TestDevelopmentDiagnostics() {
	s.Run("attached to valid result", func() {
		result := cpf.New("52998224725", cpf.WithDevelopment()).Validate()
		s.Require().True(result.Valid)
		s.Require().NotNil(result.Diagnostics)
		s.Equal(2, result.Diagnostics.DV1.DV)
		s.Equal(5, result.Diagnostics.DV2.DV)
	})

	s.Run("attached to checksum mismatch", func() {
		result := cpf.New("52998224724", cpf.WithDevelopment()).Validate()
		s.False(result.Valid)
		s.Require().NotNil(result.Diagnostics)
		s.Equal(5, result.Diagnostics.DV2.DV)
	})

	s.Run("absent when checksum is never reached", func() {
		s.Nil(cpf.New("123", cpf.WithDevelopment()).Validate().Diagnostics)
		s.Nil(cpf.New("22222222222", cpf.WithDevelopment()).Validate().Diagnostics)
	})
}

func (s *ValidatorSuite) TestVisualize() {
	s.Run("known valid CPF", func() {
		vis, err := cpf.New("52998224725").Visualize()
		s.Require().NoError(err)

		s.Equal([]int{5, 2, 9, 9, 8, 2, 2, 4, 7}, vis.DV1.Digits)
		s.Equal([]int{10, 9, 8, 7, 6, 5, 4, 3, 2}, vis.DV1.Factors)
		s.Equal(295, vis.DV1.Sum)
		s.Equal(9, vis.DV1.Remainder)
		s.Equal(2, vis.DV1.DV)

		s.Equal([]int{5, 2, 9, 9, 8, 2, 2, 4, 7, 2}, vis.DV2.Digits)
		s.Equal([]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, vis.DV2.Factors)
		s.Equal(347, vis.DV2.Sum)
		s.Equal(6, vis.DV2.Remainder)
		s.Equal(5, vis.DV2.DV)
	})

	s.Run("independent of development flag", func() {
		plain, err := cpf.New("52998224725").Visualize()
		s.Require().NoError(err)
		dev, err := cpf.New("52998224725", cpf.WithDevelopment()).Visualize()
		s.Require().NoError(err)
		s.Equal(plain, dev)
	})

	s.Run("wrong length", func() {
		_, err := cpf.New("123").Visualize()
		s.ErrorIs(err, cpf.ErrWrongLength)
	})
}

func (s *ValidatorSuite) TestString() {
	s.Equal(`CPF(value="529.982.247-25", development=false)`, cpf.New("529.982.247-25").String())
	s.Equal(`CPF(value="52998224725", development=true)`, cpf.New("52998224725", cpf.WithDevelopment()).String())
}

func (s *ValidatorSuite) TestCheckDigits() {
	s.Run("computes check digits", func() {
		dv, err := cpf.CheckDigits("529982247")
		s.Require().NoError(err)
		s.Equal("25", dv)
	})

	s.Run("accepts punctuation", func() {
		dv, err := cpf.CheckDigits("529.982.247")
		s.Require().NoError(err)
		s.Equal("25", dv)
	})

	s.Run("accepts full-width base", func() {
		dv, err := cpf.CheckDigits("５２９９８２２４７")
		s.Require().NoError(err)
		s.Equal("25", dv)
	})

	s.Run("rejects wrong base length", func() {
		_, err := cpf.CheckDigits("52998224")
		s.ErrorIs(err, cpf.ErrWrongBaseLength)
	})
}
