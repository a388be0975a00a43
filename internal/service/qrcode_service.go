package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sefazor/qrtrack-backend/internal/models"
	"github.com/sefazor/qrtrack-backend/internal/repository"
	"github.com/sefazor/qrtrack-backend/pkg/logger"
	qrPkg "github.com/sefazor/qrtrack-backend/pkg/qrcode"
)

type QrCodeService struct {
	qrRepo    repository.QrCodeRepository
	generator *ShortCodeGenerator
	renderer  *qrPkg.Renderer
	log       *logger.Logger
}

func NewQrCodeService(qrRepo repository.QrCodeRepository, generator *ShortCodeGenerator, renderer *qrPkg.Renderer, log *logger.Logger) *QrCodeService {
	return &QrCodeService{
		qrRepo:    qrRepo,
		generator: generator,
		renderer:  renderer,
		log:       log,
	}
}

// Create stores a new QR record with a freshly generated unique short code.
// The registry rejects a code that raced with another create, in which case we
// regenerate and try again within the same attempt budget.
func (s *QrCodeService) Create(userID string, req models.CreateQrCodeRequest) (*models.QrCode, error) {
	req.ApplyDefaults()

	now := time.Now()
	qr := &models.QrCode{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           req.Title,
		Type:            req.Type,
		Content:         req.Content,
		ForegroundColor: req.ForegroundColor,
		BackgroundColor: req.BackgroundColor,
		Size:            req.Size,
		Margin:          req.Margin,
		ErrorCorrection: req.ErrorCorrection,
		Style:           req.Style,
		LogoURL:         req.LogoURL,
		ClickCount:      0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for attempt := 0; attempt < maxShortCodeAttempts; attempt++ {
		code, err := s.generator.Generate()
		if err != nil {
			return nil, err
		}
		qr.ShortCode = code

		err = s.qrRepo.Create(qr)
		if errors.Is(err, repository.ErrShortCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.log.Infow("QR code created", "id", qr.ID, "shortCode", qr.ShortCode, "type", qr.Type)
		return qr, nil
	}

	return nil, ErrShortCodeExhausted
}

func (s *QrCodeService) GetUserQrCodes(userID string) ([]models.QrCode, error) {
	return s.qrRepo.GetByUserID(userID)
}

// GetImage renders the PNG for a stored record.
func (s *QrCodeService) GetImage(id string) ([]byte, error) {
	qr, err := s.qrRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	content := FormatContent(qr.Type, qr.Content)
	return s.renderer.Generate(content, qrPkg.Options{
		Size:            qr.Size,
		Margin:          qr.Margin,
		ForegroundColor: qr.ForegroundColor,
		BackgroundColor: qr.BackgroundColor,
		ErrorCorrection: qr.ErrorCorrection,
		Style:           qr.Style,
		LogoURL:         qr.LogoURL,
	})
}

// ResolveClick looks up a record by short code and records the click. Unknown
// codes record nothing.
func (s *QrCodeService) ResolveClick(shortCode string) (*models.QrCode, error) {
	qr, err := s.qrRepo.GetByShortCode(shortCode)
	if err != nil {
		return nil, err
	}

	if err := s.qrRepo.RecordClick(qr.ID); err != nil {
		return nil, err
	}

	return qr, nil
}
