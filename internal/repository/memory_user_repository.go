package repository

import (
	"sync"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

// MemoryUserRepository keeps users in process memory. State is lost on
// restart; that is the documented storage model, not a cache.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	users      map[string]*models.User
	byUsername map[string]string // username -> id
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:      make(map[string]*models.User),
		byUsername: make(map[string]string),
	}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return ErrUsernameTaken
	}

	stored := *user
	r.users[user.ID] = &stored
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r.users[id]
	return &copied, nil
}
