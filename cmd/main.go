package main

import (
	"os"

	"github.com/eatn-dev/eatn-menu-api/config"
	"github.com/eatn-dev/eatn-menu-api/routes"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Menu service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Server exited: %v", err)
	}
}
