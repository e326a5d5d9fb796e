package app

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func initLogger() {
	newGenericLogger()
	Logger.Info("logger construction succeeded")
}

func newGenericLogger() {
	var err error
	var cfg zap.Config

	conf := Config.StringMap("log")
	logFile := conf["logFile"]
	errFile := conf["errFile"]

	logFile = strings.NewReplacer(
		"{date}", time.Now().Format("20060102"),
	).Replace(logFile)

	errFile = strings.NewReplacer(
		"{date}", time.Now().Format("20060102"),
	).Replace(errFile)

	if Debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	} else {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout", logFile}
		cfg.ErrorOutputPaths = []string{"stderr", errFile}
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig = encoderCfg

	Logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}
