package notify

import (
	"fmt"

	"marketplace/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramAlerter sends merchant alerts to a Telegram chat. Merchants watch
// a shared operations channel for cancellations and refunds that need manual
// follow-up.
type TelegramAlerter struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramAlerter authenticates the bot with the given token.
func NewTelegramAlerter(token string, chatID int64) (*TelegramAlerter, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{api: api, chatID: chatID}, nil
}

// Alert sends one status change message to the merchant chat.
func (a *TelegramAlerter) Alert(notification ports.Notification) error {
	text := fmt.Sprintf("Order %s: %s -> %s",
		notification.OrderID.String(),
		notification.From.String(),
		notification.To.String(),
	)
	if notification.Reason != "" {
		text += fmt.Sprintf("\nReason: %s", notification.Reason)
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	if _, err := a.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram alert: %w", err)
	}

	return nil
}
