package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sefazor/qrtrack-backend/internal/controller"
	"github.com/sefazor/qrtrack-backend/internal/middleware"
	"github.com/sefazor/qrtrack-backend/internal/models"
	"github.com/sefazor/qrtrack-backend/internal/repository"
	"github.com/sefazor/qrtrack-backend/pkg/utils"
)

type AuthHandler struct {
	authController *controller.AuthController
	strategy       middleware.TokenStrategy
	validator      *utils.Validator
}

func NewAuthHandler(authController *controller.AuthController, strategy middleware.TokenStrategy, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authController: authController,
		strategy:       strategy,
		validator:      validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username and password are required"))
	}

	user, token, err := h.authController.Register(req)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username already exists"))
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Registration failed"))
	}

	h.strategy.Issue(c, token)

	return c.Status(fiber.StatusCreated).JSON(h.authResponse(user, token))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid username or password"))
	}

	user, token, err := h.authController.Login(req)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid username or password"))
	}

	h.strategy.Issue(c, token)

	return c.JSON(h.authResponse(user, token))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.strategy.Clear(c)
	return c.SendStatus(fiber.StatusOK)
}

// CurrentUser returns the authenticated caller, re-checked against the
// identity store so a token for a vanished user is rejected.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
	}

	user, err := h.authController.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
	}

	return c.JSON(user.ToResponse())
}

func (h *AuthHandler) authResponse(user *models.User, token string) models.AuthResponse {
	resp := models.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
	}
	if h.strategy.ExposeToken() {
		resp.Token = token
	}
	return resp
}
