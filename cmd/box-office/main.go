package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cinema-box-office/internal/config"
	"cinema-box-office/internal/database"
	"cinema-box-office/internal/models"
	"cinema-box-office/internal/repositories"
	"cinema-box-office/internal/services"
)

func main() {
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

	seatRepo := repositories.NewSeatRepository(cinemaDB.DB)
	cardRepo := repositories.NewCardRepository(bankingDB.DB)
	receiptService := services.NewReceiptService(cfg.Receipts.Dir)
	purchaseService := services.NewPurchaseService(seatRepo, cardRepo, receiptService)

	reader := bufio.NewReader(os.Stdin)

	user := &models.User{Name: prompt(reader, "Your full name: ")}
	seatID := prompt(reader, "Preferred seat no: ")
	card := &models.CardDetails{
		Type:   prompt(reader, "Your card type: "),
		Number: prompt(reader, "Your card number: "),
		CVC:    prompt(reader, "Your card cvc: "),
		Holder: prompt(reader, "Card holder name: "),
	}

	result, err := purchaseService.Purchase(user, seatID, card)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			log.Fatal("Invalid input:", err)
		case errors.Is(err, models.ErrSeatNotFound):
			log.Fatalf("No such seat: %q", seatID)
		default:
			log.Fatal("Purchase failed:", err)
		}
	}

	fmt.Println(result.Outcome.Message())
	if result.Outcome == services.OutcomeSuccess {
		fmt.Printf("Ticket saved as %s\n", result.ReceiptPath)
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		log.Fatal("Failed to read input:", err)
	}
	return strings.TrimSpace(line)
}
