package services

import (
	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/session"
)

// SalesService exposes the sales ledger to the UI
type SalesService struct {
	saleRepo SaleRepository
}

// NewSalesService creates a new sales service
func NewSalesService(saleRepo SaleRepository) *SalesService {
	return &SalesService{saleRepo: saleRepo}
}

// ListSales returns the ledger in order. Requires the view-sales
// capability.
func (s *SalesService) ListSales(sess *session.Session) ([]*models.Sale, error) {
	if !sess.Can(session.ViewSales) {
		return nil, models.ErrUnauthorized
	}
	return s.saleRepo.GetAll()
}

// TotalRevenue returns the sum of all recorded sales
func (s *SalesService) TotalRevenue(sess *session.Session) (float64, error) {
	if !sess.Can(session.ViewSales) {
		return 0, models.ErrUnauthorized
	}
	return s.saleRepo.GetTotalRevenue()
}
