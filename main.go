package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/gearcalc/cmd/calc"
	exportcmd "fjacquet/gearcalc/cmd/export"
	"fjacquet/gearcalc/cmd/loan"
	"fjacquet/gearcalc/cmd/root"
	"fjacquet/gearcalc/cmd/scenario"
	"fjacquet/gearcalc/cmd/validate"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, so the log level is known
	// before anything logs.
	loadEnvSilently()

	logrus.SetLevel(configureLogLevel())

	root.Init()

	root.Cmd.AddCommand(calc.Cmd)
	root.Cmd.AddCommand(loan.Cmd)
	root.Cmd.AddCommand(scenario.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel resolves the global log level from the environment
func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
