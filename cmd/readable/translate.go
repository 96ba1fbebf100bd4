package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SuyashSrivastava1/ReadAble/internal/observability"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
)

var translateCmd = &cobra.Command{
	Use:   "translate [file|url|-]",
	Short: "Translate text into english, spanish, hindi or french",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTranslate,
}

var (
	translateLanguage string
	translateJSON     bool
)

func init() {
	translateCmd.Flags().StringVarP(&translateLanguage, "lang", "l", "", "Target language (required)")
	translateCmd.Flags().BoolVar(&translateJSON, "json", false, "Print the result as JSON")

	if err := translateCmd.MarkFlagRequired("lang"); err != nil {
		panic(fmt.Sprintf("failed to mark lang flag as required: %v", err))
	}

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inputs, err := readInputs(ctx, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	req := types.TranslateRequest{Text: inputs[0].Text, TargetLanguage: translateLanguage}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%s", types.ValidationMessage(err))
	}

	resp := types.TranslateResponse{
		Translated:     newService(ctx).Translate(ctx, req.Text, req.TargetLanguage),
		TargetLanguage: req.TargetLanguage,
	}

	if translateJSON {
		return writeJSON(cmd.OutOrStdout(), []types.TranslateResponse{resp})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTranslation(&resp)
	return nil
}
