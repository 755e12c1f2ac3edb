package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	infraconfig "github.com/punnatorn6420/Nokair-Platform/infrastructure/config"
	infraredis "github.com/punnatorn6420/Nokair-Platform/infrastructure/redis"
	"github.com/punnatorn6420/Nokair-Platform/internal/events"
)

const defaultEventCount = 20

func newEventsCommand(o *options) *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List recent layout change events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := o.v.GetString(keyRedisAddr)
			rdb, err := infraredis.NewClient(infraconfig.RedisConfig{Address: addr, Enabled: true})
			if err != nil {
				return fmt.Errorf("connect to redis at %s: %w", addr, err)
			}
			defer func() { _ = rdb.Close() }()

			recent, err := events.Recent(cmd.Context(), rdb, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recent) == 0 {
				_, _ = fmt.Fprintln(out, "no events")
				return nil
			}
			for _, e := range recent {
				_, _ = fmt.Fprintf(out, "%s  %s  %s  %s\n",
					e.Timestamp.Format(time.RFC3339),
					infoColor.Sprint(e.EventType),
					e.Slug,
					e.EventID,
				)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&count, "count", "n", defaultEventCount, "number of events to show")
	return cmd
}
