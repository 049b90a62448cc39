package main

import (
	"errors"
	"fmt"
	"sort"

	"lifecover/internal/core/domain"
	"lifecover/internal/core/engine"
	"lifecover/internal/core/validation"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Print a recommendation for a profile without storing it",
	Example: "  lifecover recommend --age 25 --income 50000 --dependents 1 --risk Medium",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}

		profile, err := validation.ValidateProfile(input)
		if err != nil {
			var appErr *domain.AppError
			if errors.As(err, &appErr) {
				printDetails(cmd, appErr)
			}
			return err
		}

		rec := engine.Compute(profile)
		fmt.Fprintln(cmd.OutOrStdout(), rec.RecommendationText)
		fmt.Fprintln(cmd.OutOrStdout(), rec.ExplanationText)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().Float64("age", 0, "applicant age in years (18-100)")
	recommendCmd.Flags().Float64("income", 0, "annual income")
	recommendCmd.Flags().Float64("dependents", 0, "number of dependents (0-10)")
	recommendCmd.Flags().String("risk", "", "risk tolerance: Low, Medium or High")
}

// profileFromFlags leaves unset flags absent so the validator reports them
func profileFromFlags(cmd *cobra.Command) (validation.ProfileInput, error) {
	var input validation.ProfileInput
	flags := cmd.Flags()

	for name, dst := range map[string]**float64{
		"age":        &input.Age,
		"income":     &input.Income,
		"dependents": &input.Dependents,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return input, err
		}
		*dst = validation.Float(v)
	}

	risk, err := flags.GetString("risk")
	if err != nil {
		return input, err
	}
	input.RiskTolerance = risk

	return input, nil
}

func printDetails(cmd *cobra.Command, appErr *domain.AppError) {
	fields := make([]string, 0, len(appErr.Details))
	for field := range appErr.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, appErr.Details[field])
	}
}
