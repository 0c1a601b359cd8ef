package main

import (
	"fmt"
	"log"

	"cinema-box-office/internal/config"
	"cinema-box-office/internal/database"
	"cinema-box-office/internal/repositories"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Cinema.Path})
	if err != nil {
		log.Fatal("Failed to connect to cinema database:", err)
	}
	defer db.Close()

	seatRepo := repositories.NewSeatRepository(db.DB)

	seats, err := seatRepo.List()
	if err != nil {
		log.Fatal("Failed to list seats:", err)
	}

	fmt.Println("Checking Seats")

	taken := 0
	for _, seat := range seats {
		status := "free"
		if seat.Taken {
			status = "taken"
			taken++
		}
		fmt.Printf("  Seat %-4s $%7.2f  %s\n", seat.ID, seat.PriceInCurrency(), status)
	}

	fmt.Printf("Total Seats: %d\n", len(seats))
	fmt.Printf("Taken Seats: %d\n", taken)
	fmt.Printf("Free Seats: %d\n", len(seats)-taken)
}
