package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/shoplocal/internal/middleware"
	"github.com/example/shoplocal/internal/models"
	"github.com/example/shoplocal/internal/services"
	"github.com/example/shoplocal/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	notifier *services.Notifier
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, notifier *services.Notifier) *OrderHandler {
	return &OrderHandler{db: db, notifier: notifier}
}

type orderItemRequest struct {
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Product  string  `json:"product"`
	Store    string  `json:"store"`
}

type shippingAddressRequest struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type createOrderRequest struct {
	OrderItems      []orderItemRequest     `json:"orderItems"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TotalPrice      float64                `json:"totalPrice"`
}

// CreateOrder allows authenticated customers to place an order. Every item
// must reference an existing product and store or the whole order is
// rejected before anything is written.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeInvalidToken, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "invalid request body")
	}

	if len(req.OrderItems) == 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "order must contain at least one item")
	}
	if req.PaymentMethod == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "payment method is required")
	}

	order := models.Order{
		UserID:             userID,
		OrderNumber:        generateOrderNumber(),
		Status:             models.OrderStatusPending,
		PlacedAt:           time.Now(),
		ShippingAddress:    req.ShippingAddress.Address,
		ShippingCity:       req.ShippingAddress.City,
		ShippingPostalCode: req.ShippingAddress.PostalCode,
		PaymentMethod:      req.PaymentMethod,
	}

	var subtotal float64
	for i, item := range req.OrderItems {
		if item.Name == "" {
			return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError,
				fmt.Sprintf("item %d: name is required", i))
		}
		if item.Qty < 1 {
			return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError,
				fmt.Sprintf("item %d: qty must be at least 1", i))
		}

		productID, err := h.resolveProduct(item.Product)
		if err != nil {
			return err
		}
		storeID, err := h.resolveStore(item.Store)
		if err != nil {
			return err
		}

		lineTotal := item.Price * float64(item.Qty)
		subtotal += lineTotal
		order.Items = append(order.Items, models.OrderItem{
			ProductID: productID,
			StoreID:   storeID,
			Name:      item.Name,
			Category:  item.Category,
			Brand:     item.Brand,
			Quantity:  item.Qty,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
		})
	}

	order.TotalPrice = req.TotalPrice
	if order.TotalPrice == 0 {
		order.TotalPrice = subtotal
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	if h.notifier != nil {
		go h.notifyOrderPlaced(order, userID)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"placed_at":    order.PlacedAt,
			"total_price":  order.TotalPrice,
			"items":        order.Items,
		},
	})
}

func (h *OrderHandler) resolveProduct(ref string) (uuid.UUID, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, utils.NewAPIError(fiber.StatusBadRequest, utils.CodeInvalidReference,
			fmt.Sprintf("invalid product reference %q", ref))
	}

	var product models.Product
	if err := h.db.Select("id").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, utils.NewAPIError(fiber.StatusBadRequest, utils.CodeInvalidReference,
				fmt.Sprintf("unknown product reference %q", ref))
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (h *OrderHandler) resolveStore(ref string) (uuid.UUID, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, utils.NewAPIError(fiber.StatusBadRequest, utils.CodeInvalidReference,
			fmt.Sprintf("invalid store reference %q", ref))
	}

	var store models.Store
	if err := h.db.Select("id").First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, utils.NewAPIError(fiber.StatusBadRequest, utils.CodeInvalidReference,
				fmt.Sprintf("unknown store reference %q", ref))
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (h *OrderHandler) notifyOrderPlaced(order models.Order, userID uuid.UUID) {
	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("[Order] user lookup for notification failed: %v", err)
	}

	items := make([]services.OrderItemNotification, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, services.OrderItemNotification{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	notification := services.OrderNotification{
		OrderNumber:   order.OrderNumber,
		Items:         items,
		TotalPrice:    order.TotalPrice,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
	}

	if err := h.notifier.NotifyNewOrder(notification); err != nil {
		log.Printf("[Order] notification failed for order %s: %v", order.OrderNumber, err)
	}
}

// ListOrders returns orders for the authenticated user.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeInvalidToken, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("user_id = ?", userID).Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order for the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return utils.NewAPIError(fiber.StatusUnauthorized, utils.CodeInvalidToken, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, utils.CodeValidationError, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAPIError(fiber.StatusNotFound, utils.CodeNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

func generateOrderNumber() string {
	return fmt.Sprintf("#%d", time.Now().UnixNano()%1000000000)
}
