package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/datazip-inc/hivetap/constants"
)

var logger zerolog.Logger

func init() {
	// usable before Init for code paths that log during flag parsing
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Init wires the package logger to a console writer plus a rotated file
// under CONFIG_FOLDER/logs.
func Init() {
	logDir := filepath.Join(viper.GetString(constants.ConfigFolder), "logs")

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "hivetap.log"),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	if viper.GetBool("DEBUG_MODE") {
		logger = logger.Level(zerolog.DebugLevel)
	}
}

func Debug(v ...interface{}) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

func Info(v ...interface{}) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...interface{}) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	logger.Fatal().Msgf(format, v...)
}
