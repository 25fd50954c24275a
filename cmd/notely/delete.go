package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely/pkg/router"
)

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.HomePath)

		res := app.Notes.Delete(ctx, args[0])
		if !res.Success {
			fail(res.Message)
		}
		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
