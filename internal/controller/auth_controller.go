package controller

import (
	"github.com/sefazor/qrtrack-backend/internal/models"
	"github.com/sefazor/qrtrack-backend/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(req models.RegisterRequest) (*models.User, string, error) {
	return c.authService.Register(req)
}

func (c *AuthController) Login(req models.LoginRequest) (*models.User, string, error) {
	return c.authService.Login(req)
}

func (c *AuthController) GetUserByID(id string) (*models.User, error) {
	return c.authService.GetUserByID(id)
}
