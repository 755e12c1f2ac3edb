package cli

import (
	"github.com/spf13/cobra"

	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/render"
	"github.com/punnatorn6420/Nokair-Platform/internal/schema"
)

func newRenderCommand(o *options) *cobra.Command {
	var kind, route string
	var document bool

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a page schema or site layout to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKind(kind); err != nil {
				return err
			}
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			log := o.logger()
			stderr := cmd.ErrOrStderr()
			renderer, err := render.New(
				render.WithLogger(log),
				render.WithSkipHook(func(typ string) {
					_, _ = warnColor.Fprintf(stderr, "skipped unsupported type %q\n", typ)
				}),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if kind == kindLayout {
				return renderer.RenderHomeDocument(out, layout.Normalize(raw, log))
			}

			page := schema.Normalize(raw, route, log)
			if document {
				return renderer.RenderPublicPage(out, layout.Default(), page)
			}
			return renderer.RenderPage(out, page)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindPage, "document kind: page or layout")
	cmd.Flags().StringVar(&route, "route", "home", "page route (page kind only)")
	cmd.Flags().BoolVar(&document, "document", false, "wrap a page in the default site header and footer")
	return cmd
}
