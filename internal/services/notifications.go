package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/sirupsen/logrus"
)

const TextbeltEndpoint = "https://textbelt.com/text"

// NotificationService sends booking confirmations by SMS through Textbelt.
// Sends run in the background; Wait blocks until the in-flight ones finish.
type NotificationService struct {
	apiKey   string
	endpoint string
	client   *http.Client
	log      *logrus.Logger
	wg       sync.WaitGroup
}

func NewNotificationService(apiKey, endpoint string, log *logrus.Logger) *NotificationService {
	if endpoint == "" {
		endpoint = TextbeltEndpoint
	}
	return &NotificationService{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (s *NotificationService) Enabled() bool {
	return s.apiKey != ""
}

// SendBookingConfirmation texts the patient when the booking has a phone
// number. It never blocks the caller.
func (s *NotificationService) SendBookingConfirmation(b *models.Booking) {
	if !s.Enabled() {
		return
	}
	if b.Phone == "" {
		s.log.WithField("booking_id", b.ID.Hex()).Debug("SMS not sent: booking has no phone number")
		return
	}

	body := fmt.Sprintf("Appointment Confirmed: %s on %s at %s.", b.Treatment, b.AppointmentDate, b.Slot)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.sendSMS(ctx, b.Phone, body); err != nil {
			s.log.WithError(err).WithField("phone", b.Phone).Warn("failed to send SMS")
			return
		}
		s.log.WithField("phone", b.Phone).Info("sent booking confirmation SMS")
	}()
}

func (s *NotificationService) Wait() {
	s.wg.Wait()
}

type textbeltResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *NotificationService) sendSMS(ctx context.Context, phone, message string) error {
	postBody, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(postBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result textbeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode textbelt response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt: %s", result.Error)
	}
	return nil
}
