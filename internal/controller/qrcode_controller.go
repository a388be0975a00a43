package controller

import (
	"github.com/sefazor/qrtrack-backend/internal/models"
	"github.com/sefazor/qrtrack-backend/internal/service"
)

type QrCodeController struct {
	qrService *service.QrCodeService
}

func NewQrCodeController(qrService *service.QrCodeService) *QrCodeController {
	return &QrCodeController{
		qrService: qrService,
	}
}

func (c *QrCodeController) Create(userID string, req models.CreateQrCodeRequest) (*models.QrCode, error) {
	return c.qrService.Create(userID, req)
}

func (c *QrCodeController) GetUserQrCodes(userID string) ([]models.QrCode, error) {
	return c.qrService.GetUserQrCodes(userID)
}

func (c *QrCodeController) GetImage(id string) ([]byte, error) {
	return c.qrService.GetImage(id)
}

func (c *QrCodeController) ResolveClick(shortCode string) (*models.QrCode, error) {
	return c.qrService.ResolveClick(shortCode)
}
