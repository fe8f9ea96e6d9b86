package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/tradejournal/config"
)

func configureLogger(l *logrus.Logger, lc config.LogConfig, out io.Writer) error {
	level := logrus.InfoLevel
	if lc.Level != "" {
		lvl, err := logrus.ParseLevel(lc.Level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}
	l.SetLevel(level)
	l.SetOutput(out)

	switch lc.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", lc.Format)
	}
	return nil
}
