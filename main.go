package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Hiviexd/loved-cli/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err == nil {
		logrus.Debug("Loaded environment from .env")
	}

	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
