package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnvVar overrides the default log level, e.g. FADE_LOG_LEVEL=debug.
const LevelEnvVar = "FADE_LOG_LEVEL"

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

// GetProjectLogger returns the logger shared by every package in the project.
func GetProjectLogger() *logrus.Logger {
	once.Do(func() {
		projectLogger = newLogger(os.Getenv(LevelEnvVar))
	})
	return projectLogger
}

func newLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(logrus.InfoLevel)

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			l.Warnf("ignoring invalid %s=%q: %v", LevelEnvVar, level, err)
		} else {
			l.SetLevel(lvl)
		}
	}

	return l
}
