package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cinema-box-office/internal/config"
	"cinema-box-office/internal/database"
)

func main() {
	var (
		statusFlag = flag.Bool("status", false, "Show migration status")
		upFlag     = flag.Bool("up", false, "Run pending migrations")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	stores := []struct {
		store database.Store
		path  string
	}{
		{database.StoreCinema, cfg.Cinema.Path},
		{database.StoreBanking, cfg.Banking.Path},
	}

	switch {
	case *statusFlag:
		for _, s := range stores {
			withDB(s.path, func(db *database.DB) {
				if err := db.GetMigrationStatus(s.store); err != nil {
					log.Fatalf("Failed to get %s migration status: %v", s.store, err)
				}
			})
		}
	case *upFlag:
		for _, s := range stores {
			withDB(s.path, func(db *database.DB) {
				if err := db.RunMigrations(s.store); err != nil {
					log.Fatalf("Failed to run %s migrations: %v", s.store, err)
				}
			})
		}
		fmt.Println("All migrations completed successfully!")
	default:
		fmt.Println("Usage:")
		fmt.Println("  go run cmd/migrate/main.go -status   # Show migration status")
		fmt.Println("  go run cmd/migrate/main.go -up       # Run pending migrations")
		os.Exit(1)
	}
}

func withDB(path string, fn func(db *database.DB)) {
	db, err := database.NewConnection(database.Config{Path: path})
	if err != nil {
		log.Fatalf("Failed to connect to database %s: %v", path, err)
	}
	defer db.Close()
	fn(db)
}
