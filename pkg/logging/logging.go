package logging

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}

func App(name string) *logrus.Entry {
	return Component(name)
}

// SetupLogging configures the global logrus logger. Logs always go to
// stderr (stdout carries credential values); when logFilePath is set they
// additionally go to a size-rotated file.
func SetupLogging(verbose bool, logFilePath string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetOutput(os.Stderr)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if logFilePath != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		logrus.SetOutput(io.MultiWriter(os.Stderr, rotated))
	}
}

func GetDefaultLogDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "credstore", "logs")
	}
	if os.Getuid() == 0 {
		return "/var/log/credstore"
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "credstore")
}
