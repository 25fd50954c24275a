package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely/pkg/router"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := navigate(ctx, router.HomePath)

		app.Notes.Fetch(ctx)
		if msg := app.Notes.Error(); msg != "" {
			fail(msg)
		}

		filtered, err := app.Notes.Filter(listMatch)
		if err != nil {
			fatal("Error filtering notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, note := range filtered {
			fmt.Printf("%s - %s\n", note.ID, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only show notes whose title matches this glob (e.g. 'work/**')")
}
