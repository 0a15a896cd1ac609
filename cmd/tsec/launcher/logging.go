package launcher

import (
	"fmt"
	"io"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

const maxVerbosity = 5

// verbosityLevel maps the 0..5 CLI scale onto logrus levels, skipping panic:
// 0 is fatal and 5 is trace. Out-of-range values are clamped.
func verbosityLevel(v int) logrus.Level {
	if v < 0 {
		v = 0
	}
	if v > maxVerbosity {
		v = maxVerbosity
	}
	return logrus.Level(v + 1)
}

// newLogger builds the process logger. A non-empty DSN attaches a Sentry hook
// that reports error, fatal and panic entries.
func newLogger(cfg LoggingConfig, dsn string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(verbosityLevel(cfg.Verbosity))

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	}

	if dsn != "" {
		hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		log.AddHook(hook)
	}
	return log, nil
}
