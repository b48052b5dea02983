package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vsariola/gramocut/cmd"
	"github.com/vsariola/gramocut/editor"
	"github.com/vsariola/gramocut/version"
	"go.uber.org/zap"
)

type commandContext struct {
	configFlag string
	logLevel   string

	config *editor.Config
	logger *zap.Logger
}

func (c *commandContext) ensureConfig() (editor.Config, error) {
	if c.config != nil {
		return *c.config, nil
	}
	var cfg editor.Config
	var err error
	if c.configFlag != "" {
		cfg, err = editor.LoadConfigFile(c.configFlag)
	} else {
		cfg, err = editor.LoadConfig()
	}
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	c.config = &cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*zap.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	logger, err := cmd.NewLogger(cmd.LogConfig{Level: c.logLevel})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "gramocut-cli",
		Short:         "Split long recordings into tracks without the editor window",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureLogger()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ctx.logger != nil {
				ctx.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Editor configuration file path")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "loglevel", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Describe("gramocut-cli"))
			return nil
		},
	}
}
