package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

var errInvalidJSON = errors.New("invalid JSON")

func newNormalizeCommand(o *options) *cobra.Command {
	var kind, route string

	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Print a page schema or site layout in its normalized form",
		Long: `Reads a stored document (use - for stdin), reconciles it the same way
the admin and the website do, and prints the result as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKind(kind); err != nil {
				return err
			}
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			doc, err := normalizeDocument(raw, kind, route, o.logger())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindPage, "document kind: page or layout")
	cmd.Flags().StringVar(&route, "route", "home", "page route (page kind only)")
	return cmd
}

// normalizeDocument rejects input that is not JSON at all; anything that
// parses is reconciled.
func normalizeDocument(raw []byte, kind, route string, log infralogger.Logger) (any, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	if kind == kindLayout {
		return layout.Normalize(raw, log), nil
	}
	return schema.Normalize(raw, route, log), nil
}
