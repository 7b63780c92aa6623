package main

import (
	"currex/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Currex API
// @version 1.0
// @description Live currency conversion service with periodically refreshed exchange rates.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
