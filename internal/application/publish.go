package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// publish sends a domain event when a publisher is configured. Failures are
// logged and never fail the request.
func publish(ctx context.Context, pub Publisher, logger *logrus.Logger, key string, body any) {
	if pub == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pub.PublishJSON(c, key, body); err != nil && logger != nil {
		logger.WithError(err).WithField("routing_key", key).Warn("publish domain event failed")
	}
}

func utcNow() time.Time { return time.Now().UTC() }
