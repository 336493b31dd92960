package main

import (
	"fmt"
	"log"

	"roastery/internal/config"
	"roastery/internal/database"
	"roastery/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	if err := database.Seed(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
