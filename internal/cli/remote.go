package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newPullCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pull SLUG",
		Short: "Print the document stored under SLUG in the CMS backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := o.apiClient()
			if err != nil {
				return err
			}

			data, err := api.GetAdminLayout(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("pull %s: %w", args[0], err)
			}

			var out bytes.Buffer
			if err := json.Indent(&out, data, "", "  "); err != nil {
				return fmt.Errorf("pull %s: stored document is not JSON: %w", args[0], err)
			}
			out.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
}

func newPushCommand(o *options) *cobra.Command {
	var kind, route string

	cmd := &cobra.Command{
		Use:   "push SLUG FILE",
		Short: "Replace the document stored under SLUG with FILE",
		Long: `Uploads FILE (use - for stdin) to the CMS backend. With --kind the
document is normalized before upload.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, path := args[0], args[1]

			raw, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			if kind != "" {
				if err := checkKind(kind); err != nil {
					return err
				}
				if route == "" {
					route = slug
				}
				doc, err := normalizeDocument(raw, kind, route, o.logger())
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if raw, err = json.Marshal(doc); err != nil {
					return fmt.Errorf("encode %s: %w", path, err)
				}
			}

			var obj map[string]any
			if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
				return errors.New("document must be a JSON object")
			}

			api, err := o.apiClient()
			if err != nil {
				return err
			}
			if err := api.PutAdminLayout(cmd.Context(), slug, raw); err != nil {
				return fmt.Errorf("push %s: %w", slug, err)
			}

			_, _ = okColor.Fprintf(cmd.OutOrStdout(), "pushed %s to %s\n", slug, api.BaseURL())
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "normalize as page or layout before upload")
	cmd.Flags().StringVar(&route, "route", "", "page route for --kind page (defaults to SLUG)")
	return cmd
}
