package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for admin operations.
var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Admin represents a signed-up operator account. The password hash is never
// serialized in API responses.
// swagger:model Admin
type Admin struct {
	ID           string    `json:"_id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAdmin returns a new Admin with the given fields. ID is set by the
// repository on create.
func NewAdmin(firstName, lastName, email, passwordHash string, createdAt, updatedAt time.Time) *Admin {
	return &Admin{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles one-way password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil on match, ErrInvalidCredentials on a wrong
	// password, and any other error for a malformed stored hash.
	Compare(hash, password string) error
}

// TokenIssuer issues signed bearer tokens for an authenticated admin.
type TokenIssuer interface {
	Issue(adminID string) (string, error)
}

// TokenVerifier verifies a bearer token and returns the admin ID it carries.
// Verification failures are ErrTokenExpired or ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (adminID string, err error)
}

// AdminRepository defines the interface for admin identity storage.
type AdminRepository interface {
	// Create persists a new admin. A duplicate email is ErrAdminExists.
	Create(ctx context.Context, admin *Admin) error
	// GetByEmail returns ErrAdminNotFound when no admin has the email.
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
}

// AuthService defines the admin signup and login workflows.
type AuthService interface {
	SignUp(ctx context.Context, firstName, lastName, email, password string) (*Admin, error)
	Login(ctx context.Context, email, password string) (*Admin, string, error)
}
