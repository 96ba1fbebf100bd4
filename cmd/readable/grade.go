package main

import (
	"github.com/spf13/cobra"

	"github.com/SuyashSrivastava1/ReadAble/internal/observability"
	"github.com/SuyashSrivastava1/ReadAble/internal/tools"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

var gradeCmd = &cobra.Command{
	Use:   "grade [file|url|-]...",
	Short: "Estimate the reading grade of text",
	Long:  "Estimate the reading grade of each input and count its words, sentences and paragraphs. Nothing is rewritten.",
	RunE:  runGrade,
}

var gradeJSON bool

func init() {
	gradeCmd.Flags().BoolVar(&gradeJSON, "json", false, "Print reports as JSON")
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd.Context(), args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	reports := make([]*types.GradeReport, len(inputs))
	for i, in := range inputs {
		reports[i] = tools.Grade(in.Text, in.Source)
	}

	if gradeJSON {
		return writeJSON(cmd.OutOrStdout(), reports)
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, report := range reports {
		printer.PrintGrade(report)
	}
	return nil
}
