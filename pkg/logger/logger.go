package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr на уровне info, поэтому пакеты и тесты
// могут логировать, не заботясь о порядке инициализации.
var Log = logrus.New()

// Init перенастраивает глобальный логгер по переменным окружения:
//
//	LOG_LEVEL  - trace|debug|info|warn|error (по умолчанию info)
//	LOG_FORMAT - json для сбора логов, иначе цветной текст
//	LOG_OUTPUT - stderr, иначе stdout
//
// Вызывается один раз при старте (main, TestMain).
func Init() {
	Log = logrus.New()
	Log.SetLevel(levelFromEnv())
	Log.SetFormatter(formatterFromEnv())
	Log.SetOutput(outputFromEnv())
}

// Component возвращает запись с полем component: так помечают
// источник во всех подсистемах.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatterFromEnv() logrus.Formatter {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	}
}

func outputFromEnv() io.Writer {
	if strings.EqualFold(os.Getenv("LOG_OUTPUT"), "stderr") {
		return os.Stderr
	}
	return os.Stdout
}
