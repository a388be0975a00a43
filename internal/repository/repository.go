package repository

import (
	"errors"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

var (
	// ErrNotFound reports an unknown id, username or short code.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken reports a registration against an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrShortCodeTaken reports a create whose short code is already reserved.
	// The caller regenerates and retries.
	ErrShortCodeTaken = errors.New("short code already exists")
)

// UserRepository is the identity store. Usernames are unique; users are never
// updated or deleted.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// QrCodeRepository is the code registry: a primary table keyed by id plus a
// unique short-code index that must never diverge from it. Create reserves
// the short code and stores the record as one atomic step.
type QrCodeRepository interface {
	Create(qr *models.QrCode) error
	GetByID(id string) (*models.QrCode, error)
	GetByShortCode(code string) (*models.QrCode, error)
	GetByUserID(userID string) ([]models.QrCode, error)
	// RecordClick increments the click counter and refreshes updated_at.
	// Concurrent calls against the same id must not lose updates.
	RecordClick(id string) error
	ShortCodeExists(code string) (bool, error)
}
