package main

import (
	"log"
	"os"

	"bourse/cmd"
	"bourse/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	logger.Info("commit %s", os.Getenv("commit_hash"))
	apiHandler, secrets, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
