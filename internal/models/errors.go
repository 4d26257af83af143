package models

import "errors"

// Common errors used throughout the application
var (
	ErrDrinkNotFound      = errors.New("drink not found")
	ErrBrandNotFound      = errors.New("brand not found")
	ErrDrinkTypeNotFound  = errors.New("drink type not found")
	ErrCountryNotFound    = errors.New("country not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrLineNotFound       = errors.New("ticket line not found")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEntry     = errors.New("duplicate entry")
)
