package dlog

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	slogmulti "github.com/samber/slog-multi"
)

// Log is the package logger. Before Setup it writes pretty output to
// stdout only; Setup adds the file handler and the archive cron.
var Log = slog.New(NewPrettyHandler(os.Stdout, defaultOptions()))

var archiver = &Archiver{Dir: "logs"}

func Info(msg string, args ...any)  { Log.Info(msg, args...) }
func Warn(msg string, args ...any)  { Log.Warn(msg, args...) }
func Error(msg string, args ...any) { Log.Error(msg, args...) }
func Debug(msg string, args ...any) { Log.Debug(msg, args...) }

func defaultOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{AddSource: true}
}

// Setup switches the package logger to a fanout of the pretty stdout
// handler and a JSON file handler under dir, and schedules the daily
// archiver with spec (a cron expression, e.g. "0 0 * * *").
func Setup(dir string, spec string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	opts := defaultOptions()

	jsonFile, err := os.OpenFile(filepath.Join(dir, "default.json"), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}

	Log = slog.New(slogmulti.Fanout(
		NewPrettyHandler(os.Stdout, opts),
		slog.NewJSONHandler(jsonFile, opts),
	))

	archiver.Dir = dir
	c := cron.New()
	entryID, err := c.AddFunc(spec, archiver.Process)
	if err != nil {
		return err
	}
	c.Start()
	Info("Created archive cron", "entryID", entryID)
	return nil
}
