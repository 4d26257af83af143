package repositories

import (
	"database/sql"
	"fmt"

	"drink-retail-manager/internal/models"
)

// TicketRepository persists the ticket aggregate. A ticket header and its
// lines are always written inside one transaction so readers never observe
// a half-written ticket.
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create inserts a new ticket header plus one row per line. The generated
// ticket ID is captured into the aggregate. On any failure the transaction
// is rolled back and the database is left unchanged.
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	ticket.RecalculateTotal()
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO tickets (user_id, total, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		ticket.UserID,
		ticket.Total,
		ticket.Status,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get ticket id: %w", err)
	}

	lineIDs, err := insertLines(tx, int(id), ticket.Lines)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ticket creation: %w", err)
	}

	// Only mutate the aggregate once the transaction is durable; a failed
	// save must leave it exactly as it was.
	ticket.ID = int(id)
	for i, line := range ticket.Lines {
		line.TicketID = ticket.ID
		line.ID = lineIDs[i]
	}

	return nil
}

// Update rewrites a persisted ticket: the header is updated, every
// existing line row for the ticket is deleted, and the current in-memory
// line set is reinserted. Deleting zero rows is not an error; updating a
// missing header is.
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	ticket.RecalculateTotal()
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if ticket.ID == 0 {
		return models.ErrTicketNotFound
	}

	updatedAt := models.Timestamp()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE tickets
		SET user_id = ?, total = ?, status = ?, updated_at = ?
		WHERE ticket_id = ?`,
		ticket.UserID,
		ticket.Total,
		ticket.Status,
		updatedAt,
		ticket.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrTicketNotFound
	}

	if _, err := tx.Exec("DELETE FROM ticket_lines WHERE ticket_id = ?", ticket.ID); err != nil {
		return fmt.Errorf("failed to delete ticket lines: %w", err)
	}

	lineIDs, err := insertLines(tx, ticket.ID, ticket.Lines)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ticket update: %w", err)
	}

	ticket.UpdatedAt = updatedAt
	for i, line := range ticket.Lines {
		line.TicketID = ticket.ID
		line.ID = lineIDs[i]
	}

	return nil
}

// Delete removes a ticket and all of its lines. Lines go first so the
// header never exists without referential integrity.
func (r *TicketRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM ticket_lines WHERE ticket_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete ticket lines: %w", err)
	}

	result, err := tx.Exec("DELETE FROM tickets WHERE ticket_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrTicketNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ticket deletion: %w", err)
	}

	return nil
}

// GetByID loads a ticket header with its lines. The total is recomputed
// from the loaded lines rather than trusted from the stored column.
func (r *TicketRepository) GetByID(id int) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	err := r.db.QueryRow(`
		SELECT ticket_id, user_id, total, status, created_at, updated_at
		FROM tickets
		WHERE ticket_id = ?`,
		id,
	).Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Total,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !ticket.Status.Valid() {
		return nil, fmt.Errorf("ticket %d has unknown status %q", ticket.ID, ticket.Status)
	}

	lines, err := r.loadLines(ticket.ID)
	if err != nil {
		return nil, err
	}
	ticket.SetLines(lines)

	return ticket, nil
}

// GetAll retrieves all tickets with their lines, newest first
func (r *TicketRepository) GetAll() ([]*models.Ticket, error) {
	return r.queryTickets(`
		SELECT ticket_id, user_id, total, status, created_at, updated_at
		FROM tickets
		ORDER BY ticket_id DESC`)
}

// GetByUser retrieves all tickets belonging to a user, newest first
func (r *TicketRepository) GetByUser(userID int) ([]*models.Ticket, error) {
	return r.queryTickets(`
		SELECT ticket_id, user_id, total, status, created_at, updated_at
		FROM tickets
		WHERE user_id = ?
		ORDER BY ticket_id DESC`,
		userID)
}

func (r *TicketRepository) queryTickets(query string, args ...interface{}) ([]*models.Ticket, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.Total,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		if !ticket.Status.Valid() {
			return nil, fmt.Errorf("ticket %d has unknown status %q", ticket.ID, ticket.Status)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	for _, ticket := range tickets {
		lines, err := r.loadLines(ticket.ID)
		if err != nil {
			return nil, err
		}
		ticket.SetLines(lines)
	}

	return tickets, nil
}

// loadLines loads the lines of a ticket with each drink resolved from the
// catalog. The unit price stored on the line row overrides the catalog
// price, so tickets keep the price that was current when they were saved.
func (r *TicketRepository) loadLines(ticketID int) ([]*models.TicketLine, error) {
	rows, err := r.db.Query(`
		SELECT tl.ticket_line_id, tl.ticket_id, tl.quantity, tl.price,
		       d.drink_id, d.name, d.type_id, d.brand_id, d.country_code,
		       d.alcohol_content, d.description, d.volume, d.price, d.image
		FROM ticket_lines tl
		JOIN drinks d ON tl.drink_id = d.drink_id
		WHERE tl.ticket_id = ?
		ORDER BY tl.ticket_line_id`,
		ticketID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket lines: %w", err)
	}
	defer rows.Close()

	var lines []*models.TicketLine
	for rows.Next() {
		line := &models.TicketLine{Drink: &models.Drink{}}
		var snapshotPrice float64
		err := rows.Scan(
			&line.ID,
			&line.TicketID,
			&line.Quantity,
			&snapshotPrice,
			&line.Drink.ID,
			&line.Drink.Name,
			&line.Drink.TypeID,
			&line.Drink.BrandID,
			&line.Drink.CountryCode,
			&line.Drink.AlcoholContent,
			&line.Drink.Description,
			&line.Drink.Volume,
			&line.Drink.Price,
			&line.Drink.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket line: %w", err)
		}

		line.Drink.Price = snapshotPrice
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket lines: %w", err)
	}

	return lines, nil
}

// insertLines writes one row per line, snapshotting the drink's unit price
// onto the row so later catalog price edits leave historical tickets
// untouched. The generated line IDs are returned instead of assigned so
// the caller can defer aggregate mutation until after commit. Any failure
// aborts the caller's transaction.
func insertLines(tx *sql.Tx, ticketID int, lines []*models.TicketLine) ([]int, error) {
	ids := make([]int, 0, len(lines))

	for _, line := range lines {
		if line.Drink == nil || line.Drink.ID == 0 {
			return nil, fmt.Errorf("ticket line has no persisted drink: %w", models.ErrInvalidInput)
		}

		result, err := tx.Exec(`
			INSERT INTO ticket_lines (ticket_id, drink_id, quantity, price)
			VALUES (?, ?, ?, ?)`,
			ticketID,
			line.Drink.ID,
			line.Quantity,
			line.Drink.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert ticket line: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get ticket line id: %w", err)
		}
		ids = append(ids, int(id))
	}

	return ids, nil
}
