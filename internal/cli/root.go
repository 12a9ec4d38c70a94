// Package cli implements the command tree of the bigint command.
package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/db47h/bigint/internal/config"
	"github.com/db47h/bigint/internal/logging"
)

// An entry is one line of output: an expression and its value.
type entry struct {
	Expr  string `yaml:"expr"`
	Value string `yaml:"value"`
}

// environment is shared by all commands. It is set up by the root command
// before any subcommand runs.
type environment struct {
	out io.Writer
	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand returns the root command of the bigint tool, writing results
// to out and logs to the command's error stream.
func NewRootCommand(out io.Writer) *cobra.Command {
	env := &environment{
		out: out,
		cfg: &config.Config{Output: config.TextOutput},
		log: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:               "bigint",
		Short:             "Arbitrary-precision decimal integer calculator",
		SilenceUsage:      true,
		PersistentPreRunE: env.setup,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-encoding", logging.ConsoleEncoding, "log encoding (console, json)")
	pf.StringP("output", "o", config.TextOutput, "output format (text, yaml)")

	root.AddCommand(
		demoCmd(env),
		evalCmd(env),
		incCmd(env),
		decCmd(env),
		powCmd(env),
		factCmd(env),
		binomCmd(env),
	)
	return root
}

func (env *environment) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return err
	}
	env.cfg = cfg
	env.log = log.Named(cmd.Name())
	return nil
}

func (env *environment) render(entries ...entry) error {
	if env.cfg.Output == config.YAMLOutput {
		b, err := yaml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "encoding output")
		}
		_, err = env.out.Write(b)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(env.out, "%s = %s\n", e.Expr, e.Value); err != nil {
			return err
		}
	}
	return nil
}
