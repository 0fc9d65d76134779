package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cpfcheck/internal/demo"
	"cpfcheck/internal/render"
	"cpfcheck/pkg/cpf"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Validate a fixed set of example CPFs and show the check digit arithmetic",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	return demo.Run(cmd.Context(), a.out, a.cfg.Output, a.service)
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [cpf...]",
		Short: "Validate CPFs given as arguments, or one per line on stdin",
		Long: `Validate every argument as a CPF. Without arguments, each non-blank
line of stdin is validated. Exits with status 2 when any input is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = a.readLines(); err != nil {
					return err
				}
			}

			report, err := a.service.ValidateBatch(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			if err := render.Write(a.out, a.cfg.Output, report); err != nil {
				return err
			}
			a.invalid = report.Invalid() > 0
			return nil
		},
	}
}

// readLines reads stdin line by line with no length limit; oversized lines
// must reach the validator and come back as wrong_length.
func (a *app) readLines() ([]string, error) {
	var lines []string
	reader := bufio.NewReader(a.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if err != nil {
			return lines, nil
		}
	}
}

func (a *app) visualizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visualize <cpf>",
		Short: "Show both check digit calculations for an 11-digit CPF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vis, err := a.service.Visualize(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render.Write(a.out, a.cfg.Output, vis)
		},
	}
}

func (a *app) checkDigitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-digits <base>",
		Short: "Compute the two check digits for a 9-digit CPF base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dv, err := cpf.CheckDigits(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, dv)
			return nil
		},
	}
}
