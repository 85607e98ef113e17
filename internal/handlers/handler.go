package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/booking"
	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/sirupsen/logrus"
)

type OptionRepository interface {
	List(ctx context.Context) ([]models.AppointmentOption, error)
	Names(ctx context.Context) ([]string, error)
}

type BookingRepository interface {
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id, transactionID string) error
}

type UserRepository interface {
	Insert(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) (int64, error)
}

type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, d *models.Doctor) error
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	Insert(ctx context.Context, p *models.Payment) error
}

type ContactRepository interface {
	Insert(ctx context.Context, c *models.Contact) error
}

type TokenIssuer interface {
	Issue(email string) (string, error)
}

type BookingNotifier interface {
	SendBookingConfirmation(b *models.Booking)
}

type BookingCounters interface {
	BookingCreated()
	BookingConflict()
}

// Deps is everything a Handler is built from.
type Deps struct {
	Options  OptionRepository
	Bookings BookingRepository
	Users    UserRepository
	Doctors  DoctorRepository
	Payments PaymentRepository
	Contacts ContactRepository

	Guard    *booking.Guard
	Tokens   TokenIssuer
	Gateway  services.PaymentGateway
	Notifier BookingNotifier
	Counters BookingCounters

	Currency    string
	FailureMode config.FailureMode
	Log         *logrus.Logger
}

type Handler struct {
	Deps
}

func NewHandler(d Deps) *Handler {
	if d.Gateway == nil {
		d.Gateway = services.DisabledGateway{}
	}
	if d.Notifier == nil {
		d.Notifier = noopNotifier{}
	}
	if d.Counters == nil {
		d.Counters = noopCounters{}
	}
	if d.Currency == "" {
		d.Currency = "usd"
	}
	if d.FailureMode == "" {
		d.FailureMode = config.FailureRespond
	}
	return &Handler{Deps: d}
}

type noopNotifier struct{}

func (noopNotifier) SendBookingConfirmation(*models.Booking) {}

type noopCounters struct{}

func (noopCounters) BookingCreated()  {}
func (noopCounters) BookingConflict() {}

// fail reports an unexpected store or runtime failure. It is always logged;
// whether the client gets a 500 depends on the configured failure mode.
func (h *Handler) fail(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	middleware.MarkFailed(c)
	h.Log.WithError(err).WithFields(logrus.Fields{
		"route":  c.FullPath(),
		"method": c.Request.Method,
	}).Error(msg)

	if h.FailureMode == config.FailureSilent {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
