package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/username/working-days-api/internal/api"
	"github.com/username/working-days-api/internal/config"
	"github.com/username/working-days-api/internal/engine"
	"github.com/username/working-days-api/internal/holiday"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const version = "1.0.0"

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "workingdays",
		Short: "Working days calculation service",
		Long:  "Adds working days and hours to an instant using a fixed business calendar with externally supplied holidays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(calcCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			eng, err := initializeEngine(cfg)
			if err != nil {
				return err
			}

			server := api.NewServer(eng, version, logger)
			httpServer := &http.Server{
				Addr:    cfg.Server.ListenAddr,
				Handler: server.Router(),
			}

			errChan := make(chan error, 1)
			go func() {
				logger.Info("HTTP listening", zap.String("addr", cfg.Server.ListenAddr))
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errChan <- err
				}
			}()

			signalChan := make(chan os.Signal, 1)
			signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errChan:
				return fmt.Errorf("server failed: %w", err)
			case sign := <-signalChan:
				logger.Info("Captured signal, shutting down", zap.String("signal", sign.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GetShutdownTimeout())
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}

			logger.Info("Done")
			return nil
		},
	}
}

func calcCmd() *cobra.Command {
	var days, hours int
	var date string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a single working-days calculation and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			eng, err := initializeEngine(cfg)
			if err != nil {
				return err
			}

			result, err := eng.Calculate(cmd.Context(), engine.Params{
				Days:  days,
				Hours: hours,
				Date:  date,
			})
			if err != nil {
				return err
			}

			fmt.Println(result.Date)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "working days to add")
	cmd.Flags().IntVar(&hours, "hours", 0, "working hours to add")
	cmd.Flags().StringVar(&date, "date", "", "base UTC instant, e.g. 2025-04-11T22:00:00Z (default: now)")

	return cmd
}

func initializeEngine(cfg *config.Config) (*engine.Engine, error) {
	var source holiday.Source

	switch {
	case cfg.Holidays.URL != "" && cfg.Holidays.FallbackFile != "":
		primary := holiday.NewHTTPSource(cfg.Holidays.URL, cfg.Holidays.GetRequestTimeout(), cfg.Holidays.GetCacheTTL(), logger)
		fallback := holiday.NewFileSource(cfg.Holidays.FallbackFile, logger)
		source = holiday.NewCompositeSource(primary, fallback, logger)

	case cfg.Holidays.URL != "":
		source = holiday.NewHTTPSource(cfg.Holidays.URL, cfg.Holidays.GetRequestTimeout(), cfg.Holidays.GetCacheTTL(), logger)

	default:
		source = holiday.NewFileSource(cfg.Holidays.FallbackFile, logger)
	}

	eng, err := engine.New(cfg.Business.Profile(), source, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	return eng, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
