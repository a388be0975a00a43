package repository

import (
	"sync"
	"time"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

// MemoryQrCodeRepository keeps QR records and their short-code index in
// process memory. Both maps are mutated under one lock so the index can never
// drift from the primary table.
type MemoryQrCodeRepository struct {
	mu            sync.RWMutex
	qrCodes       map[string]*models.QrCode
	shortCodeToID map[string]string
	order         []string // insertion order of ids, for stable listings
}

func NewMemoryQrCodeRepository() *MemoryQrCodeRepository {
	return &MemoryQrCodeRepository{
		qrCodes:       make(map[string]*models.QrCode),
		shortCodeToID: make(map[string]string),
	}
}

func (r *MemoryQrCodeRepository) Create(qr *models.QrCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check-and-reserve under the write lock: two concurrent creates can
	// never claim the same code.
	if _, exists := r.shortCodeToID[qr.ShortCode]; exists {
		return ErrShortCodeTaken
	}

	stored := *qr
	r.qrCodes[qr.ID] = &stored
	r.shortCodeToID[qr.ShortCode] = qr.ID
	r.order = append(r.order, qr.ID)
	return nil
}

func (r *MemoryQrCodeRepository) GetByID(id string) (*models.QrCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	qr, ok := r.qrCodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *qr
	return &copied, nil
}

func (r *MemoryQrCodeRepository) GetByShortCode(code string) (*models.QrCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.shortCodeToID[code]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r.qrCodes[id]
	return &copied, nil
}

func (r *MemoryQrCodeRepository) GetByUserID(userID string) ([]models.QrCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.QrCode
	for _, id := range r.order {
		if qr := r.qrCodes[id]; qr.UserID == userID {
			result = append(result, *qr)
		}
	}
	return result, nil
}

func (r *MemoryQrCodeRepository) RecordClick(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	qr, ok := r.qrCodes[id]
	if !ok {
		return ErrNotFound
	}
	qr.ClickCount++
	qr.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryQrCodeRepository) ShortCodeExists(code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.shortCodeToID[code]
	return exists, nil
}
