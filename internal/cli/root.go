// Package cli implements pagectl, the command-line tool for checking,
// previewing and moving Nokair page documents.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	infrahttp "github.com/punnatorn6420/Nokair-Platform/infrastructure/http"
	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/client"
)

const (
	envPrefix = "pagectl"

	keyAPIURL    = "api-url"
	keyTimeout   = "timeout"
	keyDebug     = "debug"
	keyRedisAddr = "redis-addr"

	defaultTimeout   = 10 * time.Second
	defaultRedisAddr = "localhost:6379"

	kindPage   = "page"
	kindLayout = "layout"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
)

type options struct {
	v *viper.Viper
}

// Execute runs pagectl with the process arguments.
func Execute() error {
	_ = godotenv.Load()
	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand builds the pagectl command tree. Every persistent flag can
// also be set from the environment as PAGECTL_<FLAG>, e.g. PAGECTL_API_URL.
func NewRootCommand() *cobra.Command {
	o := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           "pagectl",
		Short:         "Inspect and move Nokair page documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyAPIURL, "", "CMS backend base URL")
	flags.Duration(keyTimeout, defaultTimeout, "HTTP request timeout")
	flags.Bool(keyDebug, false, "log normalization details to stderr")
	flags.String(keyRedisAddr, defaultRedisAddr, "Redis address for the events command")
	_ = o.v.BindPFlags(flags)

	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	root.AddCommand(
		newNormalizeCommand(o),
		newRenderCommand(o),
		newPullCommand(o),
		newPushCommand(o),
		newEventsCommand(o),
	)
	return root
}

func (o *options) logger() infralogger.Logger {
	level := "warn"
	if o.v.GetBool(keyDebug) {
		level = "debug"
	}
	log, err := infralogger.New(infralogger.Config{
		Level:       level,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return infralogger.NewNop()
	}
	return log
}

func (o *options) apiClient() (*client.Client, error) {
	baseURL := o.v.GetString(keyAPIURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: set --%s or PAGECTL_API_URL", client.ErrNotConfigured, keyAPIURL)
	}
	return client.New(baseURL, infrahttp.NewClient(&infrahttp.ClientConfig{
		Timeout:           o.v.GetDuration(keyTimeout),
		DisableKeepAlives: true,
	})), nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func checkKind(kind string) error {
	if kind != kindPage && kind != kindLayout {
		return fmt.Errorf("unknown kind %q (must be %q or %q)", kind, kindPage, kindLayout)
	}
	return nil
}
