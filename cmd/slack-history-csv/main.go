package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.mcconachie.co/slack-history-csv/internal/config"
	"go.mcconachie.co/slack-history-csv/internal/export"
	slackclient "go.mcconachie.co/slack-history-csv/internal/slack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

const (
	exitOK        = 0
	exitFailure   = 1
	exitTruncated = 2
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := initLogger(cfg.LogLevel, cfg.LogDir)
	defer logger.Sync()

	client, err := slackclient.NewClient(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create Slack client", zap.Error(err))
	}

	exporter := export.NewExporter(client, slackclient.NewCSVWriter(), logger, os.Stdout)
	res, err := exporter.Run(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Export failed", zap.Error(err))
	}

	if code := exitCode(res, cfg); code != exitOK {
		logger.Sync()
		os.Exit(code)
	}
}

// exitCode maps a finished export to the process exit status. Truncated
// exports still exit 0 unless FAIL_ON_TRUNCATED is set.
func exitCode(res export.Result, cfg config.Config) int {
	if res.Truncated() && cfg.FailOnTruncated {
		return exitTruncated
	}
	return exitOK
}

func initLogger(level string, logDir string) *zap.Logger {
	logLevel := interpretLogLevel(level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			logLevel,
		),
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Fatalf("Failed to create log directory: %v", err)
		}
		logFileName := fmt.Sprintf("slack-history-csv-%s.log", time.Now().Format("2006-01-02"))
		logFile, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(logFile),
			logLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

func interpretLogLevel(level string) zapcore.Level {
	var logLevel zapcore.Level

	switch level {
	case "debug":
		logLevel = zapcore.DebugLevel
	case "warn":
		logLevel = zapcore.WarnLevel
	case "error":
		logLevel = zapcore.ErrorLevel
	default:
		logLevel = zapcore.InfoLevel
	}
	return logLevel
}
