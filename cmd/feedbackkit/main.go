// Package main implements the feedbackkit CLI tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	feedbackkit "github.com/swiftlydeveloped/feedbackkit-go"
	"github.com/swiftlydeveloped/feedbackkit-go/internal/cliconfig"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "feedbackkit",
	Short:         "Browse and submit feedback on a FeedbackKit board",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagConfig  string
	flagAPIKey  string
	flagBaseURL string
	flagUser    string
	flagDebug   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/feedbackkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Server base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Act as this user id for this invocation")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every request and response")

	rootCmd.AddCommand(listCmd, showCmd, submitCmd)
	rootCmd.AddCommand(voteCmd, unvoteCmd)
	rootCmd.AddCommand(commentsCmd, commentCmd)
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(trackCmd)
}

// newClient builds an SDK client from config file, environment and flags,
// restores persisted identity, and applies any --user override.
func newClient() (*feedbackkit.Client, error) {
	cfg, err := cliconfig.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagDebug {
		cfg.Debug = true
	}

	clientCfg := cfg.ClientConfig()
	if clientCfg.StoragePath != "" {
		if err := os.MkdirAll(filepath.Dir(clientCfg.StoragePath), 0o755); err != nil {
			return nil, err
		}
	}

	client, err := feedbackkit.New(clientCfg)
	if err != nil {
		return nil, err
	}
	if err := client.LoadUserIDFromStorage(); err != nil {
		client.Close()
		return nil, err
	}
	if flagUser != "" {
		client.SetUserID(flagUser)
	}
	return client, nil
}

// parseKV parses repeated key=value flag values into a map.
func parseKV(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
