package sms

import (
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// NoopGateway stands in when Twilio credentials are absent. Messages are
// logged instead of sent so the reminder flow stays usable in development.
type NoopGateway struct {
	seq uint64
}

func NewNoopGateway() *NoopGateway {
	return &NoopGateway{}
}

func (g *NoopGateway) Send(to, body string) (string, error) {
	id := atomic.AddUint64(&g.seq, 1)

	log.WithFields(log.Fields{
		"to":   to,
		"body": body,
	}).Info("sms suppressed (noop gateway)")

	return fmt.Sprintf("noop-%d", id), nil
}

func (g *NoopGateway) Name() string {
	return "noop"
}

var _ Gateway = (*NoopGateway)(nil)
