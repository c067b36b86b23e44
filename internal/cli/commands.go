package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clemsoncpsc-discord/clembot/internal/config"
	"github.com/clemsoncpsc-discord/clembot/internal/logger"
)

func (a *app) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load secrets and start the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.FromContext(cmd.Context())
			log.Info().
				Str("version", a.build.BuildVersion()).
				Str("commit", a.build.BuildCommit()).
				Msg("starting clembot")

			secrets, err := a.loadSecrets(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("error loading bot secrets")
				return err
			}

			settings, err := secrets.Settings()
			if err != nil {
				log.Error().Err(err).Msg("error reading bot secrets")
				return err
			}

			log.Info().
				Str("prefix", settings.BotPrefix).
				Bool("bot_only", settings.BotOnly).
				Int("startup_log_channels", len(settings.StartupLogChannelIDs)).
				Int("error_log_channels", len(settings.ErrorLogChannelIDs)).
				Str("api_url", settings.APIURL).
				Msg("clembot ready")
			return nil
		},
	}
}

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load secrets and print which source satisfied each key",
		Long:  "Load secrets exactly like run does and print, per key, whether it came from the environment, a file or a default. Values are never printed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secrets, err := a.loadSecrets(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tSOURCE")
			for _, key := range config.Keys() {
				src, _ := secrets.Origin(key)
				fmt.Fprintf(w, "%s\t%s\n", key, src)
			}
			return w.Flush()
		},
	}
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version needs no logger or launch settings
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.build.Print(cmd.OutOrStdout())
		},
	}
}
