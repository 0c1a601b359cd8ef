package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cinema-box-office/internal/models"
	"cinema-box-office/internal/utils"
)

// qrImageSize is the pixel size of the receipt's QR code image
const qrImageSize = 256

// maxIDAttempts bounds the ticket ID regeneration loop when a
// generated ID collides with an existing receipt file
const maxIDAttempts = 5

// ReceiptService renders purchase receipts as PDF documents
type ReceiptService struct {
	dir string
}

// NewReceiptService creates a receipt service writing into dir
func NewReceiptService(dir string) *ReceiptService {
	return &ReceiptService{dir: dir}
}

// Emit renders the ticket as a receipt, writes it to
// ticket_<ID>.pdf along with a QR code image of the ticket ID, and
// returns the path of the PDF. If a receipt with the generated ticket
// ID already exists, the ID is regenerated before writing.
func (s *ReceiptService) Emit(ticket *models.Ticket) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt directory: %w", err)
	}

	// Ticket IDs are random but not guaranteed unique; retry on a
	// filename collision rather than overwriting someone's receipt.
	path := s.receiptPath(ticket.ID)
	for attempt := 1; ; attempt++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if attempt >= maxIDAttempts {
			return "", fmt.Errorf("failed to find a free ticket id after %d attempts", maxIDAttempts)
		}
		ticket.ID = models.GenerateTicketID()
		path = s.receiptPath(ticket.ID)
	}

	pdf, err := s.GenerateReceiptPDF(ticket)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt: %w", err)
	}

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	qr, err := utils.GenerateQRCode(ticket.ID, qrImageSize)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to generate ticket QR code: %w", err)
	}

	qrPath := filepath.Join(s.dir, fmt.Sprintf("ticket_%s.png", ticket.ID))
	if err := os.WriteFile(qrPath, qr, 0o644); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write ticket QR code: %w", err)
	}

	return path, nil
}

func (s *ReceiptService) receiptPath(ticketID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("ticket_%s.pdf", ticketID))
}

// GenerateReceiptPDF renders the ticket as a single-page PDF document
func (s *ReceiptService) GenerateReceiptPDF(ticket *models.Ticket) ([]byte, error) {
	var buffer bytes.Buffer

	// Generate PDF header
	buffer.WriteString("%PDF-1.4\n")

	// Object 1: Catalog
	buffer.WriteString("1 0 obj\n<<\n/Type /Catalog\n/Pages 2 0 R\n>>\nendobj\n\n")

	// Object 2: Pages
	buffer.WriteString("2 0 obj\n<<\n/Type /Pages\n/Kids [3 0 R]\n/Count 1\n>>\nendobj\n\n")

	content := s.generateReceiptContent(ticket)
	contentStream := s.formatContentForPDF(content)

	// Object 3: Page
	buffer.WriteString("3 0 obj\n<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n")
	buffer.WriteString("/Contents 4 0 R\n/Resources <<\n/Font <<\n/F1 5 0 R\n/F2 6 0 R\n>>\n>>\n>>\nendobj\n\n")

	// Object 4: Content stream
	buffer.WriteString(fmt.Sprintf("4 0 obj\n<<\n/Length %d\n>>\nstream\n", len(contentStream)))
	buffer.WriteString(contentStream)
	buffer.WriteString("\nendstream\nendobj\n\n")

	// Object 5: Font (Helvetica)
	buffer.WriteString("5 0 obj\n<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>\nendobj\n\n")

	// Object 6: Font (Helvetica-Bold)
	buffer.WriteString("6 0 obj\n<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica-Bold\n>>\nendobj\n\n")

	// Write xref table
	buffer.WriteString("xref\n0 7\n")
	buffer.WriteString("0000000000 65535 f \n")
	buffer.WriteString("0000000010 00000 n \n")
	buffer.WriteString("0000000079 00000 n \n")
	buffer.WriteString("0000000136 00000 n \n")
	buffer.WriteString("0000000301 00000 n \n")
	buffer.WriteString("0000000380 00000 n \n")
	buffer.WriteString("0000000459 00000 n \n")

	// Write trailer
	buffer.WriteString("trailer\n<<\n/Size 7\n/Root 1 0 R\n>>\nstartxref\n538\n%%EOF\n")

	return buffer.Bytes(), nil
}

// generateReceiptContent creates the formatted receipt text
func (s *ReceiptService) generateReceiptContent(ticket *models.Ticket) string {
	var content strings.Builder

	content.WriteString("YOUR DIGITAL TICKET\n")
	content.WriteString("===================\n\n")

	content.WriteString(fmt.Sprintf("Name: %s\n", ticket.HolderName))
	content.WriteString(fmt.Sprintf("Ticket ID: %s\n", ticket.ID))
	content.WriteString(fmt.Sprintf("Price: $%.2f\n", ticket.PriceInCurrency()))
	content.WriteString(fmt.Sprintf("Seat No: %s\n", ticket.SeatID))
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("Issued: %s\n", ticket.IssuedAt.Format("January 2, 2006 at 3:04 PM")))
	content.WriteString("\n")
	content.WriteString("Please present this ticket at the entrance.\n")

	return content.String()
}

// formatContentForPDF formats content for the PDF content stream
func (s *ReceiptService) formatContentForPDF(content string) string {
	var stream strings.Builder

	stream.WriteString("BT\n")
	stream.WriteString("/F2 18 Tf\n") // Bold font for header
	stream.WriteString("50 750 Td\n")

	currentFont := "F2"
	for _, line := range strings.Split(content, "\n") {
		// Field lines in the body use the regular font
		font := "F1"
		if strings.HasPrefix(line, "YOUR DIGITAL TICKET") {
			font = "F2"
		}
		if font != currentFont {
			if font == "F2" {
				stream.WriteString("/F2 18 Tf\n")
			} else {
				stream.WriteString("/F1 12 Tf\n")
			}
			currentFont = font
		}

		stream.WriteString(fmt.Sprintf("(%s) Tj\n", s.escapePDFString(line)))
		stream.WriteString("0 -20 Td\n")
	}

	stream.WriteString("ET\n")
	return stream.String()
}

// escapePDFString escapes special characters for PDF
func (s *ReceiptService) escapePDFString(str string) string {
	str = strings.ReplaceAll(str, "\\", "\\\\")
	str = strings.ReplaceAll(str, "(", "\\(")
	str = strings.ReplaceAll(str, ")", "\\)")
	str = strings.ReplaceAll(str, "\r", "")
	return str
}
