package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely/pkg/router"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow session changes made by other notely processes",
	Long: `Watch the session file in the state directory and report every login
or logout performed elsewhere (another terminal, another notely process).
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := navigate(ctx, router.HomePath)

		src, err := app.WatchSession(ctx)
		if err != nil {
			fatal("Error watching session", err)
		}
		if err := src.Start(ctx); err != nil {
			fatal("Error starting watcher", err)
		}

		fmt.Println("Watching session, press Ctrl+C to stop")
		for event := range src.Events() {
			state := "logged out"
			if app.Session.IsAuthenticated() {
				state = "logged in"
			}
			fmt.Printf("%s: %s\n", event, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
