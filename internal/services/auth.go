package services

import (
	"fmt"
	"time"

	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/session"
	"drink-retail-manager/internal/utils"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(id int) error
	UpdateLastLogout(id int) error
	Delete(id int) error
}

// AuthService handles login, logout and user administration
type AuthService struct {
	userRepo   UserRepository
	secret     string
	sessionTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, secret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		secret:     secret,
		sessionTTL: sessionTTL,
	}
}

// Login verifies the credentials and returns a session for the user.
// Unknown users and wrong passwords produce the same error so the login
// form cannot be used to probe for usernames.
func (s *AuthService) Login(username, password string) (*session.Session, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, models.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return session.New(user), nil
}

// Logout stamps the user's last logout time
func (s *AuthService) Logout(sess *session.Session) error {
	if err := s.userRepo.UpdateLastLogout(sess.UserID); err != nil {
		return fmt.Errorf("failed to update last logout: %w", err)
	}
	return nil
}

// Token issues a signed token for the session so it can be restored on
// the next launch
func (s *AuthService) Token(sess *session.Session) (string, error) {
	return sess.Token(s.secret, s.sessionTTL)
}

// RestoreSession rebuilds a session from a previously issued token
func (s *AuthService) RestoreSession(token string) (*session.Session, error) {
	return session.Restore(token, s.secret)
}

// RegisterUser creates a new user. Only sessions with the manage-users
// capability may call it.
func (s *AuthService) RegisterUser(sess *session.Session, req *models.UserCreateRequest) (*models.User, error) {
	if !sess.Can(session.ManageUsers) {
		return nil, models.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns all users. Requires the manage-users capability.
func (s *AuthService) ListUsers(sess *session.Session) ([]*models.User, error) {
	if !sess.Can(session.ManageUsers) {
		return nil, models.ErrUnauthorized
	}
	return s.userRepo.GetAll()
}

// DeleteUser removes a user. Requires the manage-users capability; a
// session cannot delete its own user.
func (s *AuthService) DeleteUser(sess *session.Session, userID int) error {
	if !sess.Can(session.ManageUsers) {
		return models.ErrUnauthorized
	}

	if sess.UserID == userID {
		return fmt.Errorf("cannot delete the logged-in user")
	}

	return s.userRepo.Delete(userID)
}
