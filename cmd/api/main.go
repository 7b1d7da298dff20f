package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/luizgag/fiap-backend-qualidade/internal/api"
	"github.com/luizgag/fiap-backend-qualidade/internal/config"
	"github.com/luizgag/fiap-backend-qualidade/internal/database"
)

const version = "0.0.1"

func initializeAPI(configPath string) (*api.Api, *sql.DB, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	api, err := api.NewApi(*cfg, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return api, db, nil
}

func main() {
	configPath := flag.String("config", "app.yml", "Path to configuration file")
	flag.Parse()

	log.Printf("Starting blog API v%s with config: %s", version, *configPath)

	api, db, err := initializeAPI(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	api.Serve()
}
