package main

import (
	"github.com/spf13/cobra"

	"github.com/SuyashSrivastava1/ReadAble/internal/observability"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the reading profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if profilesJSON {
			return writeJSON(cmd.OutOrStdout(), [][]profiles.ReadingProfile{profiles.All()})
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintProfiles(profiles.All())
		return nil
	},
}

var profilesJSON bool

func init() {
	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(profilesCmd)
}
