package cmd

import (
	"errors"
	"fmt"
	"time"

	"trendfeed/internal/source"

	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest <slug>",
	Short: "Write today's Markdown digest for a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(GetConfig())
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.digestBuilder()
		if err != nil {
			return err
		}
		path, err := b.Build(cmd.Context(), args[0], time.Now())
		if errors.Is(err, source.ErrInvalidSubject) {
			return fmt.Errorf("subject not found: %s", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
}
