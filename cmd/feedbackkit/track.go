package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

var trackCmd = &cobra.Command{
	Use:   "track <event>",
	Short: "Track a telemetry event",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrack,
}

var trackProps []string

func init() {
	trackCmd.Flags().StringArrayVar(&trackProps, "prop", nil, "Event property as key=value (repeatable)")
}

func runTrack(cmd *cobra.Command, args []string) error {
	properties, err := parseKV(trackProps)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.Events.Track(context.Background(), models.TrackedEvent{
		Name:       args[0],
		Properties: properties,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	if resp.EventID != "" {
		fmt.Printf("Tracked %s (%s)\n", args[0], resp.EventID)
	} else {
		fmt.Printf("Tracked %s\n", args[0])
	}
	return nil
}
