package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely"
	"github.com/aretw0/notely/pkg/core"
	"github.com/aretw0/notely/pkg/router"
)

var (
	updateTitle   string
	updateContent string
)

var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update the title or content of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		patch := notely.NotePatch{ID: core.String(id)}
		if cmd.Flags().Changed("title") {
			patch.Title = core.String(updateTitle)
		}
		if cmd.Flags().Changed("content") {
			patch.Content = core.String(updateContent)
		}
		if patch.Title == nil && patch.Content == nil {
			fail("Nothing to update: pass --title or --content")
		}

		ctx := context.Background()
		app := navigate(ctx, router.HomePath)

		res := app.Notes.Update(ctx, id, patch)
		if !res.Success {
			fail(res.Message)
		}
		fmt.Printf("Updated %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "New content")
}
