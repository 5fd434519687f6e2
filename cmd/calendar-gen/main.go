package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/username/writable-calendar/internal/calendar"
	"github.com/username/writable-calendar/internal/config"
	"github.com/username/writable-calendar/internal/holiday"
	"github.com/username/writable-calendar/internal/render"
	"github.com/username/writable-calendar/internal/render/docx"
	"github.com/username/writable-calendar/internal/render/ics"
	"github.com/username/writable-calendar/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// app carries what the commands share once flags are parsed
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "calendar-gen [year]",
		Short: "Writable calendar generator",
		Long: "Generate a printable, writable calendar for a year: one landscape page per month,\n" +
			"US federal, Christian and church observances printed under each date.\n" +
			"The year defaults to the current year.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFromArgs(args)
			if err != nil {
				return err
			}

			path, err := a.generate(year)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Calendar successfully saved as: %s\n", colorPath.Sprint(path))
			return nil
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(observancesCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Console.NoColor {
		color.NoColor = true
	}

	if cfg.Log.File != "" {
		a.logger = initFileLogger(cfg.Log.File, cfg.Log.GetLogLevel())
	} else {
		a.logger, err = initLogger(cfg.Log.GetLogLevel())
		if err != nil {
			return err
		}
	}
	return nil
}

// yearFromArgs returns the year named on the command line, or the current year
func yearFromArgs(args []string) (int, error) {
	if len(args) == 0 {
		return dateutil.CurrentYear(), nil
	}
	return dateutil.ParseYear(args[0])
}

// generate lays out the year and writes the document, returning its path
func (a *app) generate(year int) (string, error) {
	registry := render.NewRegistry(
		docx.New(render.DefaultStyle(), a.logger),
		ics.New(a.logger),
	)

	// fail before doing any work when the format cannot be produced
	renderer, err := registry.Lookup(a.cfg.Output.Format)
	if err != nil {
		return "", err
	}

	a.logger.Info("Generating calendar",
		zap.Int("year", year),
		zap.String("format", renderer.Format()),
		zap.String("output_dir", a.cfg.Output.Dir))

	builder := calendar.NewBuilder(holiday.NewDefault(), a.logger)
	months := builder.BuildYear(year)

	return render.WriteFile(a.cfg.Output.Dir, year, renderer, months, a.logger)
}

func initLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
