package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/authdog/authdog-go/authdog"
	"github.com/authdog/authdog-go/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zerolog.Nop()
	client  *authdog.Client

	// Command flags
	baseURL  string
	apiKey   string
	timeout  time.Duration
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "authdog",
	Short: "Look up Authdog user info for access tokens",
	Long: `authdog is a CLI for the Authdog identity provider. It resolves one or
more bearer access tokens into the user profile and session behind them,
optionally filtering the results with an expression.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Authdog API base URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "static API key, sent instead of the access token")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (e.g. 5s)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// initializeApp initializes the configuration, logger and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line flags take precedence over the config file
	applyFlagOverrides(cfg)

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client, err = authdog.NewClient(cfg.Authdog.ClientConfig(), authdog.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create Authdog client: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.Authdog.BaseURL).
		Bool("api_key", cfg.Authdog.APIKey != "").
		Dur("timeout", cfg.Authdog.Timeout).
		Msg("Authdog client ready")

	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if baseURL != "" {
		cfg.Authdog.BaseURL = baseURL
	}
	if apiKey != "" {
		cfg.Authdog.APIKey = apiKey
	}
	if timeout > 0 {
		cfg.Authdog.Timeout = timeout
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
