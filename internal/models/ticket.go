package models

import (
	"errors"
	"fmt"
	"math"
)

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

const (
	TicketCreated TicketStatus = "created"
	TicketClosed  TicketStatus = "closed"
)

// Valid returns true if the status is one of the known statuses
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketCreated, TicketClosed:
		return true
	default:
		return false
	}
}

// TicketLine represents one drink-and-quantity entry within a ticket.
// The ID stays 0 until the line is persisted.
type TicketLine struct {
	ID       int    `json:"id" db:"ticket_line_id"`
	TicketID int    `json:"ticket_id" db:"ticket_id"`
	Drink    *Drink `json:"drink"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// Subtotal returns the line subtotal. A line without a resolved drink
// contributes 0 rather than failing; such lines can exist transiently
// while the caller is still assembling the ticket.
func (l *TicketLine) Subtotal() float64 {
	if l.Drink == nil {
		return 0
	}
	return l.Drink.Price * float64(l.Quantity)
}

func (l *TicketLine) String() string {
	name := "no drink"
	if l.Drink != nil {
		name = l.Drink.Name
	}
	return fmt.Sprintf("%dx %s - %.2f", l.Quantity, name, l.Subtotal())
}

// Ticket is the order aggregate: a header plus an ordered collection of
// lines. Total is derived from the lines and recomputed after every
// mutation; it is never trusted from stale state.
type Ticket struct {
	ID        int           `json:"id" db:"ticket_id"`
	UserID    int           `json:"user_id" db:"user_id"`
	Total     float64       `json:"total" db:"total"`
	Status    TicketStatus  `json:"status" db:"status"`
	CreatedAt string        `json:"created_at" db:"created_at"`
	UpdatedAt string        `json:"updated_at" db:"updated_at"`
	Lines     []*TicketLine `json:"lines"`
}

// NewTicket creates an open ticket for the given user with no lines
func NewTicket(userID int) *Ticket {
	now := Timestamp()
	return &Ticket{
		UserID:    userID,
		Status:    TicketCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddLine adds quantity units of a drink to the ticket. If a line for the
// same drink already exists its quantity is incremented instead of a
// duplicate line being appended. Rejected additions leave the ticket
// untouched.
func (t *Ticket) AddLine(drink *Drink, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	if drink != nil {
		for _, line := range t.Lines {
			if line.Drink != nil && line.Drink.ID == drink.ID {
				line.Quantity += quantity
				t.RecalculateTotal()
				return nil
			}
		}
	}

	t.Lines = append(t.Lines, &TicketLine{
		TicketID: t.ID,
		Drink:    drink,
		Quantity: quantity,
	})
	t.RecalculateTotal()

	return nil
}

// RemoveLine removes the given line from the ticket. Lines are matched by
// pointer identity first, then by persisted line ID so lines reloaded from
// storage can be removed too.
func (t *Ticket) RemoveLine(line *TicketLine) error {
	if line == nil {
		return ErrLineNotFound
	}

	for i, l := range t.Lines {
		if l == line || (l.ID != 0 && l.ID == line.ID) {
			t.Lines = append(t.Lines[:i], t.Lines[i+1:]...)
			t.RecalculateTotal()
			return nil
		}
	}

	return ErrLineNotFound
}

// SetLines replaces the whole line collection, typically when loading the
// ticket from storage
func (t *Ticket) SetLines(lines []*TicketLine) {
	t.Lines = lines
	t.RecalculateTotal()
}

// ClearLines empties the line collection
func (t *Ticket) ClearLines() {
	t.Lines = nil
	t.RecalculateTotal()
}

// RecalculateTotal recomputes the ticket total as the sum of line
// subtotals, rounded to cents. Idempotent.
func (t *Ticket) RecalculateTotal() {
	var total float64
	for _, line := range t.Lines {
		total += line.Subtotal()
	}
	t.Total = math.Round(total*100) / 100
}

// Close transitions the ticket from created to closed. That is the only
// legal transition; closing an already closed ticket is an error.
func (t *Ticket) Close() error {
	if t.Status != TicketCreated {
		return fmt.Errorf("ticket cannot be closed in current status: %s", t.Status)
	}

	t.Status = TicketClosed
	t.UpdatedAt = Timestamp()

	return nil
}

// IsClosed returns true if the ticket has been closed
func (t *Ticket) IsClosed() bool {
	return t.Status == TicketClosed
}

// CanBeEdited returns true if lines may still be added or removed
func (t *Ticket) CanBeEdited() bool {
	return t.Status == TicketCreated
}

// Validate validates the ticket data
func (t *Ticket) Validate() error {
	if t.UserID <= 0 {
		return errors.New("ticket user id is required")
	}

	if err := validateTicketStatus(t.Status); err != nil {
		return err
	}

	if t.Total < 0 {
		return errors.New("ticket total cannot be negative")
	}

	for _, line := range t.Lines {
		if line.Quantity <= 0 {
			return errors.New("ticket line quantity must be greater than 0")
		}
	}

	return nil
}

// validateTicketStatus validates a ticket status
func validateTicketStatus(status TicketStatus) error {
	if !status.Valid() {
		return errors.New("invalid ticket status")
	}
	return nil
}
