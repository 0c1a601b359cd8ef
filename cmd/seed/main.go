package main

import (
	"fmt"
	"log"

	"cinema-box-office/internal/config"
	"cinema-box-office/internal/database"
	"cinema-box-office/internal/utils"
)

func main() {
	fmt.Println("Seeding cinema and banking stores")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	cinemaDB, err := database.NewConnection(database.Config{Path: cfg.Cinema.Path})
	if err != nil {
		log.Fatal("Failed to connect to cinema database:", err)
	}
	defer cinemaDB.Close()

	bankingDB, err := database.NewConnection(database.Config{Path: cfg.Banking.Path})
	if err != nil {
		log.Fatal("Failed to connect to banking database:", err)
	}
	defer bankingDB.Close()

	if err := cinemaDB.RunMigrations(database.StoreCinema); err != nil {
		log.Fatal("Failed to migrate cinema store:", err)
	}
	if err := bankingDB.RunMigrations(database.StoreBanking); err != nil {
		log.Fatal("Failed to migrate banking store:", err)
	}

	// One small auditorium of 15 seats. Seat 13 is the premium box seat.
	seats := []struct {
		ID    string
		Price int // cents
	}{
		{"1", 800}, {"2", 800}, {"3", 800}, {"4", 800}, {"5", 800},
		{"6", 1000}, {"7", 1000}, {"8", 1000}, {"9", 1000}, {"10", 1000},
		{"11", 1000}, {"12", 1000}, {"13", 10000}, {"14", 1200}, {"15", 1200},
	}

	seatQuery := `
		INSERT INTO seats (seat_id, price, taken)
		VALUES (?, ?, 0)
		ON CONFLICT (seat_id)
		DO UPDATE SET price = excluded.price`

	for _, seat := range seats {
		if _, err := cinemaDB.Exec(seatQuery, seat.ID, seat.Price); err != nil {
			log.Fatalf("Failed to seed seat %s: %v", seat.ID, err)
		}
	}
	fmt.Printf("Seeded %d seats\n", len(seats))

	cards := []struct {
		Number  string
		CVC     string
		Holder  string
		Balance int // cents
	}{
		{"4111", "123", "John Smith", 5000},
		{"5500", "456", "Maria Garcia", 25000},
		{"6011", "789", "Wei Chen", 150},
	}

	cardQuery := `
		INSERT INTO cards (number, cvc_hash, holder, balance)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (number)
		DO UPDATE SET cvc_hash = excluded.cvc_hash, holder = excluded.holder, balance = excluded.balance`

	for _, card := range cards {
		cvcHash, err := utils.HashSecret(card.CVC)
		if err != nil {
			log.Fatalf("Failed to hash cvc for card %s: %v", card.Number, err)
		}
		if _, err := bankingDB.Exec(cardQuery, card.Number, cvcHash, card.Holder, card.Balance); err != nil {
			log.Fatalf("Failed to seed card %s: %v", card.Number, err)
		}
	}
	fmt.Printf("Seeded %d cards\n", len(cards))

	fmt.Println("Seeding complete")
}
