package models

import "errors"

// Sale represents a closed ticket recorded in the sales ledger. The
// cumulative total is the running revenue figure at the time of the sale.
type Sale struct {
	ID              int     `json:"id" db:"sale_id"`
	TicketID        int     `json:"ticket_id" db:"ticket_id"`
	TotalAmount     float64 `json:"total_amount" db:"total_amount"`
	CreatedAt       string  `json:"created_at" db:"created_at"`
	CumulativeTotal float64 `json:"cumulative_total" db:"cumulative_total"`
}

// Validate validates the sale data
func (s *Sale) Validate() error {
	if s.TicketID <= 0 {
		return errors.New("sale ticket id is required")
	}

	if s.TotalAmount < 0 {
		return errors.New("sale total amount cannot be negative")
	}

	return nil
}
