package handlers

import (
	"errors"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/shoplocal/internal/models"
	"github.com/example/shoplocal/internal/utils"
)

// DefaultSearchRadiusKm applies when a nearby search omits the distance
// parameter.
const DefaultSearchRadiusKm = 10.0

// StoreHandler manages store endpoints.
type StoreHandler struct {
	db *gorm.DB
}

// NewStoreHandler constructs StoreHandler.
func NewStoreHandler(db *gorm.DB) *StoreHandler {
	return &StoreHandler{db: db}
}

type nearbyStore struct {
	models.Store
	DistanceKm float64 `json:"distance_km"`
}

// Nearby returns active stores within a radius of the given coordinates,
// nearest first.
func (h *StoreHandler) Nearby(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "latitude must be a number")
	}

	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "longitude must be a number")
	}

	radius := DefaultSearchRadiusKm
	if raw := c.Query("distance"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "distance must be a positive number")
		}
	}

	var stores []models.Store
	if err := h.db.Where("is_active = ?", true).Find(&stores).Error; err != nil {
		return err
	}

	matches := make([]nearbyStore, 0, len(stores))
	for _, store := range stores {
		d := utils.HaversineKm(lat, lon, store.Latitude, store.Longitude)
		if d <= radius {
			matches = append(matches, nearbyStore{Store: store, DistanceKm: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(matches),
		"data":    matches,
	})
}

// ListStores returns all stores, paginated.
func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Store{}).Count(&total).Error; err != nil {
		return err
	}

	var stores []models.Store
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Find(&stores).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stores,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetStore returns a single store by id.
func (h *StoreHandler) GetStore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "invalid id")
	}

	var store models.Store
	if err := h.db.First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAPIError(fiber.StatusNotFound, utils.CodeNotFound, "store not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": store})
}
