// Package cliutil holds the flags and logger setup shared by the commands.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// LogLevelFlag is the --log-level flag read by ConfigLogger.
func LogLevelFlag(def string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity level (eg: warn, info, debug)",
		Value:   def,
		EnvVars: []string{"ORDTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names give info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ConfigLogger builds a text logger writing to writer at the level given by
// --log-level and makes it the default.
func ConfigLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: ParseLevel(cctx.String("log-level")),
	}))
	slog.SetDefault(logger)
	return logger
}

// ParseKeys parses integer keys given as separate arguments or as
// whitespace or comma separated lists.
func ParseKeys(args []string) ([]int, error) {
	var keys []int
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, f := range fields {
			k, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("bad key %q: %w", f, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
