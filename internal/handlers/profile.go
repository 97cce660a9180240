package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shoplocal/internal/middleware"
	"github.com/example/shoplocal/internal/models"
	"github.com/example/shoplocal/internal/utils"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeInvalidToken, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"created_at": user.CreatedAt,
			"updated_at": user.UpdatedAt,
		},
	})
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// UpdateProfile updates mutable profile fields.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeInvalidToken, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "invalid request body")
	}

	if req.Name == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "name is required")
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", userID).
		Update("name", req.Name).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
