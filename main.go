package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/config"
	"github.com/Zachkp/microx-portfolio/internal/contact"
	"github.com/Zachkp/microx-portfolio/internal/formcheck"
	"github.com/Zachkp/microx-portfolio/internal/logging"
	"github.com/Zachkp/microx-portfolio/internal/sheet"
)

const shutdownTimeout = 5 * time.Second

var configPath string

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := serveCmd()

	rootCmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Microx style portfolio site",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(selftestCmd())

	return rootCmd
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(
				cmd.Context(), os.Interrupt, syscall.SIGTERM,
			)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	var store *sheet.Store
	if cfg.Sheet.Enabled {
		s, err := sheet.Open(cfg.Sheet.DBPath, log.Named("sheet"))
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	} else if cfg.Frontend.ContactEndpoint == config.DefaultFrontend().ContactEndpoint {
		log.Warn("Sheet is disabled but the contact form still posts to it",
			zap.String("endpoint", cfg.Frontend.ContactEndpoint))
	}

	r, err := newRouter(cfg, store, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func selftestCmd() *cobra.Command {
	var rec contact.Record

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the contact form validation suite against a submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, err := logging.Console(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer log.Sync()

			sum, err := runSelfTest(rec, time.Now(), log)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d rules passed\n", sum.Passed, sum.Total)
			if !sum.AllPassed() {
				return fmt.Errorf("%d rule(s) failed", sum.Failed())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rec.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&rec.Email, "email", "", "sender email")
	cmd.Flags().StringVar(&rec.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&rec.Message, "message", "", "message body")

	return cmd
}

// runSelfTest stamps rec with now and runs the validation suite against it.
func runSelfTest(rec contact.Record, now time.Time, log *zap.Logger) (formcheck.Summary, error) {
	rec.Timestamp = contact.FormatTimestamp(now)

	payload, err := rec.Payload()
	if err != nil {
		return formcheck.Summary{}, err
	}

	return formcheck.NewSuite(log).RunAndReport(payload), nil
}
