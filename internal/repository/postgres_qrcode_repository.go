package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

// PostgresQrCodeRepository backs the code registry with Postgres via GORM.
// The unique index on short_code makes check-and-reserve atomic at the
// database level.
type PostgresQrCodeRepository struct {
	db *gorm.DB
}

func NewPostgresQrCodeRepository(db *gorm.DB) *PostgresQrCodeRepository {
	return &PostgresQrCodeRepository{db: db}
}

func (r *PostgresQrCodeRepository) Create(qr *models.QrCode) error {
	if err := r.db.Create(qr).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrShortCodeTaken
		}
		return err
	}
	return nil
}

func (r *PostgresQrCodeRepository) GetByID(id string) (*models.QrCode, error) {
	var qr models.QrCode
	if err := r.db.First(&qr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &qr, nil
}

func (r *PostgresQrCodeRepository) GetByShortCode(code string) (*models.QrCode, error) {
	var qr models.QrCode
	if err := r.db.Where("short_code = ?", code).First(&qr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &qr, nil
}

func (r *PostgresQrCodeRepository) GetByUserID(userID string) ([]models.QrCode, error) {
	var qrCodes []models.QrCode
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&qrCodes).Error
	return qrCodes, err
}

func (r *PostgresQrCodeRepository) RecordClick(id string) error {
	result := r.db.Model(&models.QrCode{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"click_count": gorm.Expr("click_count + 1"),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresQrCodeRepository) ShortCodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.QrCode{}).Where("short_code = ?", code).Count(&count).Error
	return count > 0, err
}
