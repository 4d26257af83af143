package services

import (
	"fmt"
	"log"

	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/session"
)

// TicketRepository interface for ticket persistence
type TicketRepository interface {
	Create(ticket *models.Ticket) error
	Update(ticket *models.Ticket) error
	Delete(id int) error
	GetByID(id int) (*models.Ticket, error)
	GetAll() ([]*models.Ticket, error)
	GetByUser(userID int) ([]*models.Ticket, error)
}

// SaleRepository interface for the sales ledger
type SaleRepository interface {
	Record(sale *models.Sale) error
	GetAll() ([]*models.Sale, error)
	GetByTicket(ticketID int) (*models.Sale, error)
	GetTotalRevenue() (float64, error)
}

// TicketService handles ticket-related business logic
type TicketService struct {
	ticketRepo TicketRepository
	drinkRepo  DrinkRepository
	saleRepo   SaleRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo TicketRepository, drinkRepo DrinkRepository, saleRepo SaleRepository) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		drinkRepo:  drinkRepo,
		saleRepo:   saleRepo,
	}
}

// StartTicket opens a new empty ticket for the session's user
func (s *TicketService) StartTicket(sess *session.Session) (*models.Ticket, error) {
	if !sess.Can(session.CreateTickets) {
		return nil, models.ErrUnauthorized
	}
	return models.NewTicket(sess.UserID), nil
}

// AddDrink looks up a drink and adds the given quantity to the ticket
func (s *TicketService) AddDrink(ticket *models.Ticket, drinkID, quantity int) error {
	if !ticket.CanBeEdited() {
		return fmt.Errorf("ticket is closed and cannot be edited")
	}

	drink, err := s.drinkRepo.GetByID(drinkID)
	if err != nil {
		return err
	}

	return ticket.AddLine(drink, quantity)
}

// RemoveLine removes a line from the ticket
func (s *TicketService) RemoveLine(ticket *models.Ticket, line *models.TicketLine) error {
	if !ticket.CanBeEdited() {
		return fmt.Errorf("ticket is closed and cannot be edited")
	}
	return ticket.RemoveLine(line)
}

// Save persists the ticket, creating it on first save and rewriting the
// header and lines on later saves
func (s *TicketService) Save(ticket *models.Ticket) error {
	if ticket.ID == 0 {
		return s.ticketRepo.Create(ticket)
	}
	return s.ticketRepo.Update(ticket)
}

// CloseTicket closes the ticket, persists it and records the sale in the
// ledger. A ledger failure after the ticket is closed is logged but does
// not reopen the ticket; the sale can be re-recorded from the ticket.
func (s *TicketService) CloseTicket(ticket *models.Ticket) (*models.Sale, error) {
	prevStatus, prevUpdatedAt := ticket.Status, ticket.UpdatedAt

	if err := ticket.Close(); err != nil {
		return nil, err
	}

	if err := s.Save(ticket); err != nil {
		// The database still holds the open ticket, so the in-memory
		// aggregate must stay open too or the close could never be
		// retried.
		ticket.Status = prevStatus
		ticket.UpdatedAt = prevUpdatedAt
		return nil, err
	}

	sale := &models.Sale{
		TicketID:    ticket.ID,
		TotalAmount: ticket.Total,
		CreatedAt:   ticket.UpdatedAt,
	}

	if err := s.saleRepo.Record(sale); err != nil {
		log.Printf("warning: ticket %d closed but sale not recorded: %v", ticket.ID, err)
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	return sale, nil
}

// DeleteTicket removes a persisted ticket and its lines. Requires the
// manage-tickets capability.
func (s *TicketService) DeleteTicket(sess *session.Session, ticketID int) error {
	if !sess.Can(session.ManageTickets) {
		return models.ErrUnauthorized
	}
	return s.ticketRepo.Delete(ticketID)
}

// GetTicket loads a ticket with its lines
func (s *TicketService) GetTicket(id int) (*models.Ticket, error) {
	return s.ticketRepo.GetByID(id)
}

// ListTickets returns all tickets
func (s *TicketService) ListTickets() ([]*models.Ticket, error) {
	return s.ticketRepo.GetAll()
}

// ListTicketsByUser returns the tickets opened by a user
func (s *TicketService) ListTicketsByUser(userID int) ([]*models.Ticket, error) {
	return s.ticketRepo.GetByUser(userID)
}
