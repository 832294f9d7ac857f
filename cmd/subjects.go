package cmd

import (
	"fmt"
	"text/tabwriter"

	"trendfeed/internal/subject"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the configured subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := subject.FromConfig(GetConfig().Subjects)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tNAME\tSOURCE\tCOMMUNITY\tMEMBERS\tLEVEL")
		for _, s := range registry.List() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", s.Slug, s.Name, s.Source, s.Community, s.CommunitySize, s.Level())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
