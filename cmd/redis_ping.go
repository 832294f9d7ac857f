package cmd

import (
	"context"
	"fmt"
	"time"

	"trendfeed/internal/cache"

	"github.com/spf13/cobra"
)

// pingCmd pings the configured Redis server.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping the Redis cache backend and print PONG",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := cache.NewRedis(cache.DialRedis(GetConfig().Redis))
		defer r.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()

		res, err := r.Ping(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	redisCmd.AddCommand(pingCmd)
}
