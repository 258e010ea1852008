// Command volcano answers budgeted reward-routing queries over tunnel
// networks read from the line-oriented node listing.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/network"
	"github.com/katalvlaran/volcano/parse"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("volcano version %s (commit: %s)", version, commit)
	}

	return fmt.Sprintf("volcano version %s-dev", version)
}

// app carries what the persistent pre-run resolves for every subcommand.
type app struct {
	configPath string
	logLevel   string
	format     string

	cfg   *config.Config
	log   *logrus.Logger
	runID string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "volcano",
		Short:        "volcano — budgeted reward routing over tunnel networks",
		Version:      versionString(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (env: VOLCANO_* override it)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.format, "format", "", "Output format: text|json|pretty")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newDistancesCmd(a))

	return root
}

// setup loads configuration, applies persistent flag overrides and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	a.cfg = cfg
	a.log = log
	a.runID = uuid.New().String()

	return nil
}

// logger returns the run-scoped log entry.
func (a *app) logger() *logrus.Entry {
	return a.log.WithField("run_id", a.runID)
}

// loadNetwork parses the input named by args[0], the configured input, or
// standard input, in that order.
func (a *app) loadNetwork(cmd *cobra.Command, args []string) (*network.Network, error) {
	path := a.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}

	var (
		net *network.Network
		err error
	)
	if path == "" || path == "-" {
		net, err = parse.Network(cmd.InOrStdin())
		path = "stdin"
	} else {
		net, err = parse.File(path)
	}
	if err != nil {
		return nil, err
	}
	a.logger().WithFields(logrus.Fields{
		"input":   path,
		"nodes":   net.Len(),
		"tunnels": net.EdgeCount(),
		"rewards": len(net.RewardIDs()),
	}).Info("network loaded")

	return net, nil
}
