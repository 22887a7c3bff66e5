package application

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/internal/domain/message"
)

const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
)

type Payment struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Details   any    `json:"details"`
}

type PaymentStatus struct {
	PaymentID        string    `json:"payment_id"`
	Status           string    `json:"status"`
	ConfirmationTime time.Time `json:"confirmation_time"`
}

// PaymentService simulates a payment gateway. Nothing is stored: every
// payment id resolves as confirmed.
type PaymentService struct {
	Publisher Publisher
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewPaymentService(pub Publisher, logger *logrus.Logger) *PaymentService {
	return &PaymentService{Publisher: pub, Logger: logger, Now: utcNow}
}

// Create fabricates a pending payment whose id is "pay_" followed by the
// current unix time in seconds with microsecond fraction.
func (s *PaymentService) Create(ctx context.Context, details any) Payment {
	now := s.Now()
	p := Payment{
		PaymentID: "pay_" + strconv.FormatFloat(float64(now.UnixMicro())/1e6, 'f', -1, 64),
		Status:    PaymentPending,
		Details:   details,
	}
	counters.Add(metricPaymentsCreated, 1)
	publish(ctx, s.Publisher, s.Logger, message.PaymentCreated, message.PaymentCreatedBody{
		PaymentID: p.PaymentID,
		Details:   details,
		At:        now,
	})
	return p
}

func (s *PaymentService) Status(_ context.Context, paymentID string) PaymentStatus {
	return PaymentStatus{PaymentID: paymentID, Status: PaymentConfirmed, ConfirmationTime: s.Now()}
}
