package repositories

import (
	"database/sql"
	"fmt"

	"drink-retail-manager/internal/models"
)

// SaleRepository handles the sales ledger
type SaleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *sql.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Record appends a sale to the ledger. The cumulative total is derived
// from the previous ledger entry inside the same transaction, so the
// running figure stays consistent even if two records race on the file.
func (r *SaleRepository) Record(sale *models.Sale) error {
	if err := sale.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if sale.CreatedAt == "" {
		sale.CreatedAt = models.Timestamp()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var previous float64
	err = tx.QueryRow("SELECT COALESCE(MAX(cumulative_total), 0) FROM sales").Scan(&previous)
	if err != nil {
		return fmt.Errorf("failed to get cumulative total: %w", err)
	}

	cumulative := previous + sale.TotalAmount

	result, err := tx.Exec(`
		INSERT INTO sales (ticket_id, total_amount, created_at, cumulative_total)
		VALUES (?, ?, ?, ?)`,
		sale.TicketID,
		sale.TotalAmount,
		sale.CreatedAt,
		cumulative,
	)
	if err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get sale id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sale: %w", err)
	}

	sale.ID = int(id)
	sale.CumulativeTotal = cumulative

	return nil
}

// GetAll retrieves all sales in ledger order
func (r *SaleRepository) GetAll() ([]*models.Sale, error) {
	rows, err := r.db.Query(`
		SELECT sale_id, ticket_id, total_amount, created_at, cumulative_total
		FROM sales
		ORDER BY sale_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		sale := &models.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.TicketID,
			&sale.TotalAmount,
			&sale.CreatedAt,
			&sale.CumulativeTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

// GetByTicket retrieves the sale recorded for a ticket
func (r *SaleRepository) GetByTicket(ticketID int) (*models.Sale, error) {
	sale := &models.Sale{}
	err := r.db.QueryRow(`
		SELECT sale_id, ticket_id, total_amount, created_at, cumulative_total
		FROM sales
		WHERE ticket_id = ?`,
		ticketID,
	).Scan(
		&sale.ID,
		&sale.TicketID,
		&sale.TotalAmount,
		&sale.CreatedAt,
		&sale.CumulativeTotal,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	return sale, nil
}

// GetTotalRevenue returns the sum of all recorded sales
func (r *SaleRepository) GetTotalRevenue() (float64, error) {
	var revenue float64
	err := r.db.QueryRow("SELECT COALESCE(SUM(total_amount), 0) FROM sales").Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to get total revenue: %w", err)
	}
	return revenue, nil
}
