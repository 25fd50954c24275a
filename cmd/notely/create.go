package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely"
	"github.com/aretw0/notely/pkg/router"
)

var (
	createTitle   string
	createContent string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.HomePath)

		res := app.Notes.Create(ctx, notely.NoteDraft{
			Title:   createTitle,
			Content: createContent,
		})
		if !res.Success {
			fail(res.Message)
		}

		list := app.Notes.Notes()
		fmt.Printf("Created %s\n", list[len(list)-1].ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createContent, "content", "", "Note content")
	_ = createCmd.MarkFlagRequired("title")
}
