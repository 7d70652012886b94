package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantworks/plantworks/internal/config"
)

var chatTimeout time.Duration

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a single message to the coordinator",
	Long: `Send one message through the full routing and specialist pipeline and
print the response. Useful for smoke-testing configuration without
starting the server.

Examples:
  plantworks chat "how do I water my monstera?"
  plantworks chat "where can I buy a snake plant under $30?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().DurationVar(&chatTimeout, "timeout", 30*time.Second,
		"Maximum time to wait for a response")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := setupLog(logLevelFlags); err != nil {
		return err
	}

	comps, err := buildComponents(cfg, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), chatTimeout)
	defer cancel()

	message := strings.Join(args, " ")
	response := comps.coordinator.Respond(ctx, message)

	fmt.Fprintln(cmd.OutOrStdout(), response)
	return nil
}
