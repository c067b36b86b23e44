// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clemsoncpsc-discord/clembot/internal/buildinfo"
	"github.com/clemsoncpsc-discord/clembot/internal/config"
	"github.com/clemsoncpsc-discord/clembot/internal/logger"
)

// Exit codes returned by [Execute].
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// app holds state shared by all commands of one invocation.
type app struct {
	build   buildinfo.Info
	environ map[string]string
	logOut  io.Writer

	secretsFiles []string
	logLevel     string
	logConsole   bool

	launch LaunchSettings
}

// NewRootCommand builds the clembot command tree. environ replaces the
// process environment for both the launcher settings and the secrets; logOut
// receives structured logs.
func NewRootCommand(build buildinfo.Info, environ map[string]string, logOut io.Writer) *cobra.Command {
	a := &app{
		build:   build,
		environ: environ,
		logOut:  logOut,
	}

	root := &cobra.Command{
		Use:               "clembot",
		Short:             "ClemBot bot process",
		Long:              "ClemBot loads its secrets from the environment and JSON/YAML files, then starts the bot.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}

	flags := root.PersistentFlags()
	flags.StringArrayVarP(&a.secretsFiles, "secrets", "s", nil,
		"secrets file to read; repeat for more, later files win (env CLEMBOT_SECRETS_FILES)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (env CLEMBOT_LOG_LEVEL)")
	flags.BoolVar(&a.logConsole, "log-console", false, "human-readable logs instead of JSON (env CLEMBOT_LOG_CONSOLE)")

	root.AddCommand(
		a.newRunCommand(),
		a.newCheckCommand(),
		a.newVersionCommand(),
	)

	return root
}

// prepare resolves launch settings (flags over environment) and attaches the
// logger to the command context.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	launch, err := parseLaunchSettings(a.environ)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("secrets") {
		launch.SecretsFiles = a.secretsFiles
	}
	if flags.Changed("log-level") {
		launch.LogLevel = a.logLevel
	}
	if flags.Changed("log-console") {
		launch.LogConsole = a.logConsole
	}

	level, err := logger.ParseLevel(launch.LogLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	log := logger.NewLogger("clembot",
		logger.WithOutput(a.logOut),
		logger.WithLevel(level),
		logger.WithConsole(launch.LogConsole),
	)
	a.launch = launch

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.WithContext(ctx))

	return nil
}

// loadSecrets runs the secrets loader with the resolved launch settings.
func (a *app) loadSecrets(ctx context.Context) (*config.BotSecrets, error) {
	log := logger.FromContext(ctx)
	log.Debug().Strs("files", a.launch.SecretsFiles).Msg("loading bot secrets")

	loader := config.NewLoader(
		config.WithLogger(log),
		config.WithEnvironment(a.environ),
	)

	return loader.Load(a.launch.SecretsFiles...)
}

// Execute runs the CLI against the real process and returns an exit code.
func Execute(build buildinfo.Info) int {
	root := NewRootCommand(build, config.EnvironmentFromOS(), os.Stdout)
	return run(root, os.Args[1:])
}

func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return ExitFailure
	}

	return ExitSuccess
}
