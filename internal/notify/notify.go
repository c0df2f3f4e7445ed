// Package notify pushes new-lead alerts to the broker over Telegram.
// Notifications are optional: without a configured bot nothing is sent.
package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"vitrine/server/internal/models"

	"github.com/sirupsen/logrus"
)

type Service struct {
	logger   *logrus.Logger
	client   *http.Client
	botToken string
	chatID   string
}

func NewService(botToken, chatID string, logger *logrus.Logger) *Service {
	return &Service{
		logger:   logger,
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a bot token and chat id are configured.
func (s *Service) Enabled() bool {
	return s.botToken != "" && s.chatID != ""
}

// NotifyNewLead sends a formatted alert for a freshly submitted lead.
func (s *Service) NotifyNewLead(lead models.Lead) error {
	message := fmt.Sprintf(
		"📩 <b>New lead</b>\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\n",
		lead.Name, lead.Email, lead.Phone)
	if lead.Message != "" {
		message += fmt.Sprintf("Message: %s\n", lead.Message)
	}
	if lead.PropertyURL != "" {
		message += fmt.Sprintf("\nProperty: %s", lead.PropertyURL)
	}

	return s.SendMessage(message)
}

// SendMessage delivers an HTML-formatted message to the configured chat.
func (s *Service) SendMessage(message string) error {
	if !s.Enabled() {
		return errors.New("telegram notifications are not configured")
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)
	payload := map[string]interface{}{
		"chat_id":    s.chatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %v", err)
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
