package mailer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	mailtpl "github.com/oksasatya/happnhere-api/pkg/mailer/templates"
)

// Sender delivers one rendered email; implemented by *Mailgun.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Outcome tells the consumer what to do with the delivery.
type Outcome int

const (
	Ack Outcome = iota
	Requeue
	Drop
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	default:
		return "drop"
	}
}

// Dispatcher turns domain events into emails. Messages that can never be
// sent are dropped; send failures are requeued.
type Dispatcher struct {
	Sender  Sender
	AppName string
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewDispatcher(sender Sender, appName string, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Sender: sender, AppName: appName, Logger: logger, Timeout: 15 * time.Second}
}

func (d *Dispatcher) Handle(ctx context.Context, key string, body []byte) Outcome {
	log := d.Logger.WithField("routing_key", key)

	job, err := JobFromEvent(d.AppName, key, body)
	if err != nil {
		log.WithError(err).Warn("bad message")
		return Drop
	}
	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		log.WithError(err).WithField("template", job.Template).Error("render failed")
		return Drop
	}

	c, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()
	if err := d.Sender.Send(c, job.To, subject, text, html); err != nil {
		log.WithError(err).WithField("to", job.To).Warn("send failed")
		return Requeue
	}
	log.WithField("to", job.To).WithField("template", job.Template).Info("notification sent")
	return Ack
}
