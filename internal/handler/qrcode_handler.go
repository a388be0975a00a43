package handler

import (
	"errors"
	"fmt"
	"html"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sefazor/qrtrack-backend/internal/controller"
	"github.com/sefazor/qrtrack-backend/internal/models"
	"github.com/sefazor/qrtrack-backend/internal/repository"
	"github.com/sefazor/qrtrack-backend/internal/service"
	"github.com/sefazor/qrtrack-backend/pkg/logger"
	"github.com/sefazor/qrtrack-backend/pkg/utils"
)

type QrCodeHandler struct {
	qrController *controller.QrCodeController
	validator    *utils.Validator
	log          *logger.Logger
}

func NewQrCodeHandler(qrController *controller.QrCodeController, validator *utils.Validator, log *logger.Logger) *QrCodeHandler {
	return &QrCodeHandler{
		qrController: qrController,
		validator:    validator,
		log:          log,
	}
}

func (h *QrCodeHandler) Create(c *fiber.Ctx) error {
	var req models.CreateQrCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to create QR code: " + err.Error()))
	}

	userID := c.Locals("userID").(string)

	qr, err := h.qrController.Create(userID, req)
	if err != nil {
		h.log.Errorw("failed to create QR code", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to create QR code"))
	}

	return c.Status(fiber.StatusCreated).JSON(qr)
}

func (h *QrCodeHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	qrCodes, err := h.qrController.GetUserQrCodes(userID)
	if err != nil {
		h.log.Errorw("failed to fetch QR codes", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch QR codes"))
	}

	if qrCodes == nil {
		qrCodes = []models.QrCode{}
	}
	return c.JSON(qrCodes)
}

// Image streams the rendered PNG. Public by design; unknown ids just 404.
func (h *QrCodeHandler) Image(c *fiber.Ctx) error {
	id := c.Params("id")

	png, err := h.qrController.GetImage(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("QR code not found"))
		}
		h.log.Errorw("failed to generate QR code image", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to generate QR code image"))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(png)))
	return c.Send(png)
}

// Redirect resolves a short code, records the click and dispatches by type:
// 302 for url/email/phone/sms, an inline HTML page for wifi/vcard/text.
func (h *QrCodeHandler) Redirect(c *fiber.Ctx) error {
	shortCode := c.Params("shortCode")

	qr, err := h.qrController.ResolveClick(shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("QR code not found"))
		}
		h.log.Errorw("failed to process QR code redirect", "shortCode", shortCode, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to process QR code"))
	}

	switch qr.Type {
	case models.TypeURL, models.TypeEmail, models.TypePhone, models.TypeSMS:
		return c.Redirect(service.FormatContent(qr.Type, qr.Content), fiber.StatusFound)
	case models.TypeWifi:
		network, pass := service.WifiCredentials(qr.Content)
		return h.sendHTML(c, fmt.Sprintf(
			"<html><body><h1>WiFi Network</h1><p><strong>Network:</strong> %s</p><p><strong>Password:</strong> %s</p><p>Scan this QR code with your device to connect automatically.</p></body></html>",
			html.EscapeString(network), html.EscapeString(pass)))
	case models.TypeVCard:
		return h.sendHTML(c, fmt.Sprintf(
			"<html><body><h1>Contact Information</h1><pre>%s</pre></body></html>",
			html.EscapeString(qr.Content)))
	default:
		// text and anything else displays the raw content
		return h.sendHTML(c, fmt.Sprintf(
			"<html><body><h1>QR Code Content</h1><p>%s</p></body></html>",
			html.EscapeString(qr.Content)))
	}
}

func (h *QrCodeHandler) sendHTML(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(body)
}
