package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	log  Logger
	once sync.Once
)

// Init initializes the file-backed logger. Console output is reserved for
// user-facing narration, so all logging goes to a file under the user's
// home directory.
func Init() {
	once.Do(func() {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic("Failed to get user home directory: " + err.Error())
		}

		logDir := filepath.Join(homeDir, ".create-next-elysia")
		err = os.MkdirAll(logDir, 0755)
		if err != nil {
			panic("Failed to create .create-next-elysia directory: " + err.Error())
		}

		logFile, err := os.OpenFile(filepath.Join(logDir, "create-next-elysia.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			panic("Failed to open log file: " + err.Error())
		}

		zerologLogger := zerolog.New(logFile).With().Timestamp().Logger()
		log = &ZerologAdapter{logger: &zerologLogger}
	})
}

// Get returns the logger instance. Init must have been called first.
func Get() Logger {
	if log == nil {
		return NewNullLogger()
	}
	return log
}

// ZerologAdapter adapts zerolog.Logger to our Logger interface
type ZerologAdapter struct {
	logger *zerolog.Logger
}

func (z *ZerologAdapter) Debug(msg string) { z.logger.Debug().Msg(msg) }
func (z *ZerologAdapter) Info(msg string)  { z.logger.Info().Msg(msg) }
func (z *ZerologAdapter) Warn(msg string)  { z.logger.Warn().Msg(msg) }
func (z *ZerologAdapter) Error(msg string) { z.logger.Error().Msg(msg) }
func (z *ZerologAdapter) Fatal(msg string) { z.logger.Fatal().Msg(msg) }
func (z *ZerologAdapter) WithField(key string, value interface{}) Logger {
	newLogger := z.logger.With().Interface(key, value).Logger()
	return &ZerologAdapter{logger: &newLogger}
}
