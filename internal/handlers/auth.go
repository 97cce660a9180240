package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shoplocal/internal/config"
	"github.com/example/shoplocal/internal/models"
	"github.com/example/shoplocal/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type authRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new customer account and issues a session token.
// Whatever role the request carries, the stored role is always "customer";
// admin accounts are never created through this endpoint.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "name, email, and password are required")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return utils.NewAPIError(fiber.StatusConflict, utils.CodeEmailTaken, "user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, utils.CodeInternal, "failed to hash password")
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, utils.CodeInternal, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// Login authenticates an existing user. An unknown email and a wrong
// password fail with distinct codes so clients can offer registration to
// unknown accounts without guessing from message wording.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "email and password are required")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeAccountNotFound, "account not found")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeInvalidCredentials, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, utils.CodeInternal, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}
