package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely"
	"github.com/aretw0/notely/pkg/router"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.LoginPath)

		res := app.Session.Login(ctx, notely.LoginCredentials{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if !res.Success {
			fail(res.Message)
		}
		fmt.Printf("Logged in as %s\n", loginEmail)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
