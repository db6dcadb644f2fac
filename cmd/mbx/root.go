package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/lukehollenback/mbx/config"
	"github.com/lukehollenback/mbx/exchange/binance"
	"github.com/lukehollenback/mbx/logging"
	"github.com/lukehollenback/mbx/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//
// app holds everything a subcommand needs once the persistent flags have been processed.
//
type app struct {
	configPath string
	format     string
	logLevel   string

	cfg      *config.Config
	client   *binance.Client
	renderer *render.Renderer
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "mbx",
		Short:         "Query and trade on Binance from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&a.format, "format", "f", render.Table.String(), "output format (table, csv, json)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides the config file)")

	root.AddCommand(
		a.timeCommand(),
		a.pricesCommand(),
		a.tickersCommand(),
		a.depthCommand(),
		a.klinesCommand(),
		a.balancesCommand(),
		a.orderCommand(),
		a.statusCommand(),
		a.cancelCommand(),
		a.symbolCommand("open-orders", "List open orders on a symbol", (*binance.Client).OpenOrders),
		a.symbolCommand("all-orders", "List all orders on a symbol (params: orderId, limit)", (*binance.Client).AllOrders),
		a.symbolCommand("trades", "List account trades on a symbol (params: fromId, limit)", (*binance.Client).MyTrades),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	if err := logging.Configure(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Color); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	format, err := render.ParseFormat(a.format)
	if err != nil {
		return err
	}

	options := []binance.Option{
		binance.WithHTTPClient(&http.Client{Timeout: cfg.Exchange.Timeout}),
		binance.WithLogger(logging.For(binance.Name)),
	}

	if cfg.Exchange.HasCredentials() {
		options = append(options, binance.WithCredentials(cfg.Exchange.Key, cfg.Exchange.Secret))
	}

	if cfg.Exchange.StrictErrors {
		options = append(options, binance.WithStrictErrors())
	}

	a.cfg = cfg
	a.client = binance.NewClient(cfg.Exchange.Endpoint, options...)
	a.renderer = render.New(cmd.OutOrStdout(), format, cfg.Logging.Color && isTerminal(cmd))

	logging.For(Name).WithField("endpoint", a.client.Endpoint()).Debug("Client ready.")

	return nil
}

//
// addParamFlag registers the repeatable --param key=value flag through which any extra endpoint
// parameter can be forwarded verbatim.
//
func addParamFlag(fs *pflag.FlagSet) *[]string {
	return fs.StringArrayP("param", "p", nil, "extra request parameter as key=value (repeatable)")
}

func parseParams(raw []string) (binance.Params, error) {
	params := binance.Params{}

	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid parameter %q (expected key=value)", kv)
		}

		params[k] = v
	}

	return params, nil
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
