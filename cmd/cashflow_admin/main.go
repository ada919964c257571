package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/core/services"
	"github.com/SscSPs/cashflow_app/internal/platform/config"
	"github.com/SscSPs/cashflow_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashflow_app/pkg/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "cashflow_admin",
	Short: "Operator tooling for the cashflow backend",
	Long: `cashflow_admin runs schema migrations, repairs cached safe balances
and bootstraps users and safe grants without going through the HTTP API.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(recomputeCmd())
	rootCmd.AddCommand(createUserCmd())
	rootCmd.AddCommand(grantCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// initServices connects to the database and builds the same service container the server uses.
// The returned func closes the pool.
func initServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{MaxConns: cfg.DBMaxConns, EnablePing: true})
	if err != nil {
		return nil, nil, err
	}

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
	return container, func() { database.ClosePgxPool(pool) }, nil
}
