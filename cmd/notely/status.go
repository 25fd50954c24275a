package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely/pkg/router"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session and client state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.LoginPath)

		if statusJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(app.State()); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if !app.Session.IsAuthenticated() {
			fmt.Println("Not logged in")
			return
		}

		claims, ok := app.Session.Claims()
		if !ok {
			fmt.Println("Logged in")
			return
		}
		fmt.Printf("Logged in as %s\n", claims.Subject)
		if claims.ExpiresAt != nil {
			note := ""
			if claims.Expired(time.Now()) {
				note = " (expired)"
			}
			fmt.Printf("Token expires %s%s\n", claims.ExpiresAt.Local().Format(time.RFC1123), note)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
