// Package cli implements the vimfault command.
package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jmgilman/vimfault"
	"github.com/jmgilman/vimfault/config"
	"github.com/jmgilman/vimfault/faultlog"
)

// app holds state shared by subcommands once the root command has run.
type app struct {
	catalog  string
	logLevel string

	logger   *log.Logger
	registry *vimfault.Registry
}

// NewRootCommand returns the vimfault command writing results to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "vimfault",
		Short:         "Inspect the vim25 fault catalog and bind fault payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.catalog, "catalog", "", "catalog overlay file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the configuration")

	cmd.AddCommand(
		newKindsCommand(a),
		newDescribeCommand(a),
		newDecodeCommand(a),
	)
	return cmd
}

func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.catalog)
	if err != nil {
		return err
	}

	a.logger = newLogger(errOut, cfg.Log, a.logLevel)

	a.registry, err = cfg.Apply(vimfault.Default())
	if err != nil {
		return err
	}
	if len(cfg.Kinds) > 0 {
		a.logger.WithFields(log.Fields{
			"catalog": a.catalog,
			"kinds":   len(cfg.Kinds),
		}).Debug("applied catalog overlay")
	}
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig, levelOverride string) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}

	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.InfoLevel)
		logger.Warnf("invalid log level %q, fallback to info", level)
	}

	logger.AddHook(faultlog.NewHook(log.ErrorLevel, log.WarnLevel))
	return logger
}

// resolve finds a kind by wire name or, failing that, by type name.
func (a *app) resolve(name string) (*vimfault.Kind, error) {
	if k, err := a.registry.Lookup(name); err == nil {
		return k, nil
	}
	k, err := a.registry.LookupType(name)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", name, err)
	}
	return k, nil
}
