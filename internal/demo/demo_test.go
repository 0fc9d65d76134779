package demo

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpfcheck/internal/render"
	"cpfcheck/internal/validation"
	"cpfcheck/internal/validation/metrics"
	"cpfcheck/pkg/cpf"
)

func newService(t *testing.T) (*validation.Service, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	svc, err := validation.New(validation.WithMetrics(m))
	require.NoError(t, err)
	return svc, m
}

func TestExamples(t *testing.T) {
	want := map[string]struct {
		valid  bool
		reason cpf.Reason
	}{
		"Valid CPF without mask":             {true, ""},
		"Valid CPF with mask":                {true, ""},
		"Valid CPF with surrounding spaces":  {true, ""},
		"Invalid CPF (check digit)":          {false, cpf.ReasonCheckDigitsMismatch},
		"Invalid CPF (all digits identical)": {false, cpf.ReasonAllDigitsIdentical},
		"CPF with invalid characters":        {false, cpf.ReasonWrongLength},
		"Development mode":                   {true, ""},
	}

	examples := Examples()
	require.Len(t, examples, len(want))
	for _, ex := range examples {
		w, ok := want[ex.Title]
		require.True(t, ok, ex.Title)
		result := ex.Validator.Validate()
		assert.Equal(t, w.valid, result.Valid, ex.Title)
		assert.Equal(t, w.reason, result.Reason, ex.Title)
	}
}

func TestRun(t *testing.T) {
	svc, m := newService(t)

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &buf, render.FormatYAML, svc))

	out := buf.String()
	assert.Contains(t, out, "CPF validation demo")
	assert.Contains(t, out, `Object: CPF(value=" 529.982.247-25 ", development=false)`)
	assert.Contains(t, out, `Object: CPF(value="52998224725", development=true)`)
	assert.Contains(t, out, "reason: all_digits_identical")
	assert.Contains(t, out, "Check digit calculation:")
	assert.Contains(t, out, "dv: 5")
	assert.Contains(t, out, "diagnostics:")

	assert.Equal(t, 4.0, testutil.ToFloat64(m.Validations.WithLabelValues(validation.OutcomeValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("check_digits_mismatch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("all_digits_identical")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("wrong_length")))
}

func TestRunUnknownFormat(t *testing.T) {
	svc, _ := newService(t)
	err := Run(context.Background(), &bytes.Buffer{}, "toml", svc)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
