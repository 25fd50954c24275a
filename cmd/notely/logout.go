package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely/pkg/router"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.LoginPath)

		app.Session.Logout(ctx)
		fmt.Println("Logged out")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
