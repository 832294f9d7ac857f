package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Print activity counts for every subject as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(GetConfig())
		if err != nil {
			return err
		}
		defer a.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(a.service.Counts(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(countsCmd)
}
