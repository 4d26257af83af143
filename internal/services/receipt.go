package services

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"drink-retail-manager/internal/models"
)

// ReceiptService renders printable receipts for tickets
type ReceiptService struct {
	storeName string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(storeName string) *ReceiptService {
	return &ReceiptService{storeName: storeName}
}

// Render produces the text body of a receipt: one row per line with
// quantity, drink name and subtotal, followed by the ticket total.
func (s *ReceiptService) Render(ticket *models.Ticket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", s.storeName)
	fmt.Fprintf(&b, "Ticket #%d  %s\n", ticket.ID, ticket.CreatedAt)
	fmt.Fprintf(&b, "--------------------------------\n")

	for _, line := range ticket.Lines {
		name := "?"
		if line.Drink != nil {
			name = line.Drink.Name
		}
		fmt.Fprintf(&b, "%2dx %-20s %8.2f\n", line.Quantity, name, line.Subtotal())
	}

	fmt.Fprintf(&b, "--------------------------------\n")
	fmt.Fprintf(&b, "TOTAL %26.2f\n", ticket.Total)

	return b.String()
}

// QRCode encodes the ticket number into a PNG so a printed receipt can be
// scanned back at the counter. The ticket must be persisted first.
func (s *ReceiptService) QRCode(ticket *models.Ticket) ([]byte, error) {
	if ticket.ID == 0 {
		return nil, fmt.Errorf("ticket is not persisted")
	}

	png, err := qrcode.Encode(fmt.Sprintf("ticket:%d", ticket.ID), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket QR code: %w", err)
	}

	return png, nil
}
