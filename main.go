package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/kurup-associates/legal-office-api/api/handlers"
	"github.com/kurup-associates/legal-office-api/api/scheduler"
	"github.com/kurup-associates/legal-office-api/databases"

	"go.uber.org/zap"

	"github.com/kurup-associates/legal-office-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	a.Initialize() //initialize database and router

	// daily hearing reminder digest
	s := scheduler.NewScheduler(
		databases.NewInterimOrderDatabase(a.DBHelper()),
		databases.NewClerkUserDatabase(a.DBHelper()),
		databases.NewSchedulerLockDatabase(a.DBHelper()),
	)
	s.Start()
	defer s.Stop()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("legal-office-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
