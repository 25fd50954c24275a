package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely/internal/fakeapi"
)

var (
	devAddr     string
	devEmail    string
	devPassword string
)

var devserverCmd = &cobra.Command{
	Use:    "devserver",
	Short:  "Run an in-memory notes API for local development",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		api := fakeapi.New(fakeapi.WithLogger(slog.Default()))
		if devEmail != "" {
			api.AddUser(devEmail, "", devPassword)
		}

		srv := &http.Server{
			Addr:              devAddr,
			Handler:           api,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			slog.Info("dev server starting", "addr", devAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				fatal("ListenAndServe", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fatal("Server forced to shutdown", err)
		}
		fmt.Println("Server exiting")
	},
}

func init() {
	rootCmd.AddCommand(devserverCmd)
	devserverCmd.Flags().StringVar(&devAddr, "addr", ":3000", "Listen address")
	devserverCmd.Flags().StringVar(&devEmail, "user", "", "Seed an account with this email")
	devserverCmd.Flags().StringVar(&devPassword, "password", "", "Password of the seeded account")
}
