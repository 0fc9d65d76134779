// Package demo holds the fixed example set shown by `cpfcheck demo`.
package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cpfcheck/internal/render"
	"cpfcheck/pkg/cpf"
)

// VisualizedCPF is the known-valid CPF whose check digit arithmetic is shown
// at the end of the demo.
const VisualizedCPF = "52998224725"

// Example is a titled validator.
type Example struct {
	Title     string
	Validator *cpf.Validator
}

// Examples returns the demo inputs in display order.
func Examples() []Example {
	return []Example{
		{"Valid CPF without mask", cpf.New("52998224725")},
		{"Valid CPF with mask", cpf.New("529.982.247-25")},
		{"Valid CPF with surrounding spaces", cpf.New(" 529.982.247-25 ")},
		{"Invalid CPF (check digit)", cpf.New("52998224724")},
		{"Invalid CPF (all digits identical)", cpf.New("111.111.111-11")},
		{"CPF with invalid characters", cpf.New("529.982.247-2A")},
		{"Development mode", cpf.New("52998224725", cpf.WithDevelopment())},
	}
}

// Validator is the subset of the validation service the demo drives, so demo
// outcomes are logged and counted like any other validation.
type Validator interface {
	ValidateWith(ctx context.Context, v *cpf.Validator) cpf.Result
	Visualize(ctx context.Context, raw string) (cpf.Visualization, error)
}

// Run validates every example through svc and renders the results to w,
// followed by the visualization of VisualizedCPF.
func Run(ctx context.Context, w io.Writer, format string, svc Validator) error {
	rule := strings.Repeat("=", 72)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CPF validation demo")
	fmt.Fprintln(w, rule)

	for _, ex := range Examples() {
		fmt.Fprintf(w, "\n%s:\n  Object: %s\n", ex.Title, ex.Validator)
		if err := render.Write(w, format, svc.ValidateWith(ctx, ex.Validator)); err != nil {
			return fmt.Errorf("render %q: %w", ex.Title, err)
		}
	}

	fmt.Fprintln(w, "\nCheck digit calculation:")
	vis, err := svc.Visualize(ctx, VisualizedCPF)
	if err != nil {
		return err
	}
	return render.Write(w, format, vis)
}
