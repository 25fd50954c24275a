package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely"
	"github.com/aretw0/notely/pkg/router"
)

var (
	registerEmail    string
	registerName     string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long:  `Create an account on the notes service. Registering does not log you in.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.LoginPath)

		res := app.Session.Register(ctx, notely.RegisterCredentials{
			Email:    registerEmail,
			Name:     registerName,
			Password: registerPassword,
		})
		if !res.Success {
			fail(res.Message)
		}
		fmt.Println("Registered. Run 'notely login' to start a session.")
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
}
