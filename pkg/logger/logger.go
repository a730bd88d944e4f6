package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.New()

// Init configures the process logger. verbosity maps the -v count to a
// level (0 = info, 1 = debug, >= 2 = trace). When logFilePath is set,
// log output is mirrored to a rotating file.
func Init(verbosity int, logFilePath string) error {
	switch {
	case verbosity == 1:
		log.SetLevel(logrus.DebugLevel)
	case verbosity >= 2:
		log.SetLevel(logrus.TraceLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	log.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceFormatting: true,
	})

	writers := []io.Writer{os.Stderr}
	if logFilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    25,
			MaxBackups: 3,
			MaxAge:     30,
		})
	}
	log.SetOutput(io.MultiWriter(writers...))

	return nil
}

// GetLogger returns a component-scoped entry.
func GetLogger(prefix string) *logrus.Entry {
	if len(prefix) > 0 && len(prefix) < 12 {
		prefix = fmt.Sprintf("%-12s", prefix)
	}

	return log.WithField("prefix", prefix)
}
