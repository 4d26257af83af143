package services

import (
	"fmt"

	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/session"
)

// DrinkRepository interface for drink catalog data operations
type DrinkRepository interface {
	Create(drink *models.Drink) error
	GetByID(id int) (*models.Drink, error)
	GetAll() ([]*models.Drink, error)
	SearchByName(name string) ([]*models.Drink, error)
	Update(drink *models.Drink) error
	Delete(id int) error
}

// BrandRepository interface for brand data operations
type BrandRepository interface {
	GetByID(id int) (*models.Brand, error)
	GetAll() ([]*models.Brand, error)
	GetOrCreateByName(name, countryCode string) (int, error)
	Delete(id int) error
}

// DrinkTypeRepository interface for drink type data operations
type DrinkTypeRepository interface {
	GetByID(id int) (*models.DrinkType, error)
	GetAll() ([]*models.DrinkType, error)
	GetOrCreateByName(name string) (int, error)
	Delete(id int) error
}

// CountryRepository interface for country data operations
type CountryRepository interface {
	Create(country *models.Country) error
	GetByCode(code string) (*models.Country, error)
	GetAll() ([]*models.Country, error)
}

// CatalogService handles drink catalog business logic
type CatalogService struct {
	drinkRepo   DrinkRepository
	brandRepo   BrandRepository
	typeRepo    DrinkTypeRepository
	countryRepo CountryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	drinkRepo DrinkRepository,
	brandRepo BrandRepository,
	typeRepo DrinkTypeRepository,
	countryRepo CountryRepository,
) *CatalogService {
	return &CatalogService{
		drinkRepo:   drinkRepo,
		brandRepo:   brandRepo,
		typeRepo:    typeRepo,
		countryRepo: countryRepo,
	}
}

// DrinkInput carries the operator-entered fields for a new or updated
// drink. Brand and type are given by name; they are resolved to IDs,
// creating the records on first use.
type DrinkInput struct {
	Name           string
	TypeName       string
	BrandName      string
	CountryCode    string
	AlcoholContent float64
	Description    string
	Volume         float64
	Price          float64
	Image          []byte
}

// CreateDrink resolves the brand and type names and inserts the drink.
// Requires the manage-catalog capability.
func (s *CatalogService) CreateDrink(sess *session.Session, input DrinkInput) (*models.Drink, error) {
	if !sess.Can(session.ManageCatalog) {
		return nil, models.ErrUnauthorized
	}

	drink, err := s.resolveDrink(input)
	if err != nil {
		return nil, err
	}

	if err := s.drinkRepo.Create(drink); err != nil {
		return nil, err
	}

	return drink, nil
}

// UpdateDrink resolves names and rewrites an existing drink
func (s *CatalogService) UpdateDrink(sess *session.Session, id int, input DrinkInput) (*models.Drink, error) {
	if !sess.Can(session.ManageCatalog) {
		return nil, models.ErrUnauthorized
	}

	drink, err := s.resolveDrink(input)
	if err != nil {
		return nil, err
	}
	drink.ID = id

	if err := s.drinkRepo.Update(drink); err != nil {
		return nil, err
	}

	return drink, nil
}

func (s *CatalogService) resolveDrink(input DrinkInput) (*models.Drink, error) {
	typeID, err := s.typeRepo.GetOrCreateByName(input.TypeName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve drink type: %w", err)
	}

	brandID, err := s.brandRepo.GetOrCreateByName(input.BrandName, input.CountryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve brand: %w", err)
	}

	return &models.Drink{
		Name:           input.Name,
		TypeID:         typeID,
		BrandID:        brandID,
		CountryCode:    input.CountryCode,
		AlcoholContent: input.AlcoholContent,
		Description:    input.Description,
		Volume:         input.Volume,
		Price:          input.Price,
		Image:          input.Image,
	}, nil
}

// DeleteDrink removes a drink from the catalog
func (s *CatalogService) DeleteDrink(sess *session.Session, id int) error {
	if !sess.Can(session.ManageCatalog) {
		return models.ErrUnauthorized
	}
	return s.drinkRepo.Delete(id)
}

// GetDrink retrieves a drink by ID
func (s *CatalogService) GetDrink(id int) (*models.Drink, error) {
	return s.drinkRepo.GetByID(id)
}

// ListDrinks returns the full catalog
func (s *CatalogService) ListDrinks() ([]*models.Drink, error) {
	return s.drinkRepo.GetAll()
}

// SearchDrinks returns drinks whose name contains the substring,
// case-insensitively
func (s *CatalogService) SearchDrinks(name string) ([]*models.Drink, error) {
	return s.drinkRepo.SearchByName(name)
}

// ListBrands returns all brands
func (s *CatalogService) ListBrands() ([]*models.Brand, error) {
	return s.brandRepo.GetAll()
}

// ListDrinkTypes returns all drink types
func (s *CatalogService) ListDrinkTypes() ([]*models.DrinkType, error) {
	return s.typeRepo.GetAll()
}

// ListCountries returns all countries
func (s *CatalogService) ListCountries() ([]*models.Country, error) {
	return s.countryRepo.GetAll()
}

// AddCountry inserts a new country. Requires the manage-catalog capability.
func (s *CatalogService) AddCountry(sess *session.Session, country *models.Country) error {
	if !sess.Can(session.ManageCatalog) {
		return models.ErrUnauthorized
	}
	return s.countryRepo.Create(country)
}
