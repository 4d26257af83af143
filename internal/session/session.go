package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"drink-retail-manager/internal/models"
)

// Capability is a single action a session is allowed to perform. Views
// check capabilities instead of comparing role strings.
type Capability string

const (
	ManageUsers   Capability = "manage_users"
	ManageCatalog Capability = "manage_catalog"
	CreateTickets Capability = "create_tickets"
	ManageTickets Capability = "manage_tickets"
	ViewSales     Capability = "view_sales"
)

// roleCapabilities maps each role to its allowed actions, resolved once
// when the session is built.
var roleCapabilities = map[models.Role][]Capability{
	models.RoleAdmin: {
		ManageUsers,
		ManageCatalog,
		CreateTickets,
		ManageTickets,
		ViewSales,
	},
	models.RoleWorker: {
		CreateTickets,
		ViewSales,
	},
}

// Session identifies the logged-in operator. It is passed explicitly to
// whatever needs it; there is no process-wide current user.
type Session struct {
	UserID   int
	Username string
	Role     models.Role

	caps map[Capability]bool
}

// New builds a session for a user, resolving the capability set from the
// user's role
func New(user *models.User) *Session {
	return newSession(user.ID, user.Username, user.Role)
}

func newSession(userID int, username string, role models.Role) *Session {
	caps := make(map[Capability]bool)
	for _, c := range roleCapabilities[role] {
		caps[c] = true
	}

	return &Session{
		UserID:   userID,
		Username: username,
		Role:     role,
		caps:     caps,
	}
}

// Can reports whether the session is allowed to perform the capability
func (s *Session) Can(c Capability) bool {
	return s.caps[c]
}

// IsAdmin reports whether the session belongs to an admin user
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// tokenClaims is the JWT payload used to persist a session between
// application launches
type tokenClaims struct {
	UserID   int    `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// Token signs the session into a compact token valid for the given
// duration
func (s *Session) Token(secret string, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		UserID:   s.UserID,
		Username: s.Username,
		Role:     string(s.Role),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Restore rebuilds a session from a previously issued token. Expired or
// tampered tokens are rejected.
func Restore(tokenString, secret string) (*Session, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("session token carries unknown role: %s", claims.Role)
	}

	return newSession(claims.UserID, claims.Username, role), nil
}
