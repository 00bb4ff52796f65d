// Package cli implements the eleyo-account command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/natserract/eleyo/pkg/config"
	"github.com/natserract/eleyo/pkg/eleyo"
	"github.com/natserract/eleyo/pkg/eleyo/account"
	httpclient "github.com/natserract/eleyo/pkg/http"
	"github.com/natserract/eleyo/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	mode      string
	baseURI   string
	logLevel  string
	transport string

	client account.AccountClient
	logger *zap.Logger
}

// NewRootCommand builds the command tree. Output goes to out and diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "eleyo-account",
		Short:         "Manage Eleyo user accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.mode, "mode", "", "target deployment: production, test or development")
	flags.StringVar(&a.baseURI, "base-uri", "", "override the account server URI")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.transport, "transport", "", "HTTP transport: http or resty")

	root.AddCommand(
		a.listCommand(),
		a.getCommand(),
		a.createCommand(),
		a.updateCommand(),
		a.mergeCommand(),
		a.deleteCommand(),
		a.ownerCommand(),
		a.locksCommand(),
	)

	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		var apiErr *eleyo.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(errOut, "Error: API returned status %d\n%s\n", apiErr.Code, apiErr.Body)
		} else {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = a.mode
	}
	if cmd.Flags().Changed("base-uri") {
		cfg.BaseURI = a.baseURI
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("transport") {
		cfg.Transport = a.transport
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.logger = logger.New(cfg.LogLevel)

	accountCfg, err := cfg.AccountConfig()
	if err != nil {
		return err
	}

	var transport httpclient.Doer
	switch cfg.Transport {
	case config.TransportResty:
		transport = httpclient.NewRestyClient(cfg.Timeout(), a.logger)
	default:
		transport = httpclient.NewClientWithTimeout(cfg.Timeout(), a.logger)
	}

	client, err := account.NewClientWithTransport(accountCfg, cfg.Credential(), transport, a.logger)
	if err != nil {
		return err
	}
	a.client = client

	a.logger.Debug("Account client configured",
		zap.String("mode", cfg.Mode),
		zap.String("server_uri", accountCfg.Environment.ServerURI()),
		zap.String("transport", cfg.Transport))
	return nil
}

func (a *app) print(v eleyo.Value) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

// parseQuery turns key=value arguments into query parameters.
func parseQuery(args []string) (url.Values, error) {
	q := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", arg)
		}
		q.Add(key, value)
	}
	return q, nil
}

// parseJSONObject decodes a JSON object argument, keeping numbers as json.Number.
func parseJSONObject(arg string) (map[string]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(arg))
	dec.UseNumber()

	var params map[string]interface{}
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON object: unexpected data after object")
	}
	return params, nil
}
