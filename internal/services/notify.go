package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// Notifier sends order notifications to a Telegram admin chat. With no bot
// token configured it degrades to a no-op, so local setups work without
// Telegram credentials.
type Notifier struct {
	botToken    string
	adminChatID string
}

// NewNotifier creates a Notifier.
func NewNotifier(botToken, adminChatID string) *Notifier {
	return &Notifier{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (n *Notifier) SendMessage(chatID, text string) error {
	if n.botToken == "" {
		log.Println("[Notify] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Notify] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Notify] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (n *Notifier) SendToAdmin(text string) error {
	if n.adminChatID == "" {
		log.Println("[Notify] Admin chat ID not configured")
		return nil
	}
	return n.SendMessage(n.adminChatID, text)
}

// OrderNotification contains order data for the admin notification.
type OrderNotification struct {
	OrderNumber   string
	Items         []OrderItemNotification
	TotalPrice    float64
	CustomerName  string
	CustomerEmail string
	PaymentMethod string
	Status        string
}

// OrderItemNotification contains order item data.
type OrderItemNotification struct {
	Name     string
	Quantity int
	Price    float64
}

// NotifyNewOrder sends a notification about a new order to the admin chat.
func (n *Notifier) NotifyNewOrder(order OrderNotification) error {
	if n.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemTotal := item.Price * float64(item.Quantity)
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   %d x $%.2f = $%.2f\n",
			i+1,
			item.Name,
			item.Quantity,
			item.Price,
			itemTotal,
		))
	}

	message := fmt.Sprintf(`<b>🛒 NEW ORDER</b>
<b>📋 Order:</b> %s
<b>👤 Customer:</b> %s
<b>📧 Email:</b> %s
<b>📦 Items:</b>
%s
<b>💰 Total:</b> $%.2f
<b>💳 Payment:</b> %s
<b>📍 Status:</b> %s`,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		itemsList.String(),
		order.TotalPrice,
		order.PaymentMethod,
		order.Status,
	)

	return n.SendToAdmin(strings.TrimSpace(message))
}
