// Package telegram runs the calculators as a chat bot: a long-polling command
// loop that parses arguments, runs the same core packages the HTTP API uses,
// and replies with MarkdownV2 summary cards.
//
// Delivery retries with linear backoff to ride out rate limiting and
// transient network failures.
package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client wraps the bot API with retrying delivery.
type Client struct {
	bot            *tgbotapi.BotAPI
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Client{
		bot:            bot,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// Send delivers a MarkdownV2 message to a chat with retry.
func (c *Client) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2" // Use MarkdownV2 for better escaping support

	var lastErr error

	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(c.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	// Characters that need escaping in MarkdownV2:
	// _ * [ ] ( ) ~ ` > # + - = | { } . !

	result := ""
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			result += "\\" + string(char)
		default:
			result += string(char)
		}
	}
	return result
}
