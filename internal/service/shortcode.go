package service

import (
	"errors"

	"github.com/sefazor/qrtrack-backend/internal/repository"
	"github.com/sefazor/qrtrack-backend/pkg/utils"
)

const (
	shortCodeLength      = 6
	maxShortCodeAttempts = 10
)

// ErrShortCodeExhausted reports that no unique short code could be produced
// within the attempt budget. At 62^6 possible codes this only happens when the
// registry is pathologically full.
var ErrShortCodeExhausted = errors.New("failed to generate a unique short code")

// ShortCodeGenerator produces random 6-character alphanumeric codes that are
// unique against the code registry. Uniqueness here is advisory; the registry
// re-checks atomically when the record is stored.
type ShortCodeGenerator struct {
	qrRepo repository.QrCodeRepository
}

func NewShortCodeGenerator(qrRepo repository.QrCodeRepository) *ShortCodeGenerator {
	return &ShortCodeGenerator{qrRepo: qrRepo}
}

func (g *ShortCodeGenerator) Generate() (string, error) {
	for attempt := 0; attempt < maxShortCodeAttempts; attempt++ {
		code := utils.GenerateRandomString(shortCodeLength)

		exists, err := g.qrRepo.ShortCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrShortCodeExhausted
}
