package db

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// State is the position of a Connector in its retry state machine:
//
//	IDLE ──► ATTEMPTING(n) ──► CONNECTED
//	              │
//	              ├──► ATTEMPTING(n+1)   (after baseDelay × n)
//	              └──► EXHAUSTED         (n == maxAttempts)
//
// CONNECTED and EXHAUSTED are terminal.
type State string

const (
	StateIdle       State = "IDLE"
	StateAttempting State = "ATTEMPTING"
	StateConnected  State = "CONNECTED"
	StateExhausted  State = "EXHAUSTED"
)

// Pinger runs a trivial liveness query against the data source.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SleepFunc blocks for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Connector retries a liveness query with linear backoff until it succeeds
// or maxAttempts is reached.
type Connector struct {
	pinger      Pinger
	maxAttempts int
	baseDelay   time.Duration
	log         *logrus.Entry
	sleep       SleepFunc

	state   State
	attempt int
}

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithSleep replaces the wait between attempts.
func WithSleep(fn SleepFunc) ConnectorOption {
	return func(c *Connector) { c.sleep = fn }
}

// NewConnector returns a Connector in the IDLE state. maxAttempts below 1 is
// treated as 1.
func NewConnector(pinger Pinger, maxAttempts int, baseDelay time.Duration, log *logrus.Entry, opts ...ConnectorOption) *Connector {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	c := &Connector{
		pinger:      pinger,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		log:         log,
		sleep:       sleepContext,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current state.
func (c *Connector) State() State { return c.state }

// Attempts reports how many liveness queries have been issued.
func (c *Connector) Attempts() int { return c.attempt }

// ConnectWithRetry drives the state machine to a terminal state and reports
// whether the data source is reachable. A cancelled ctx ends the wait early
// and counts as exhaustion.
func (c *Connector) ConnectWithRetry(ctx context.Context) bool {
	for c.attempt = 1; c.attempt <= c.maxAttempts; c.attempt++ {
		c.state = StateAttempting
		c.log.Infof("Attempting database connection (%d/%d)...", c.attempt, c.maxAttempts)

		err := c.pinger.Ping(ctx)
		if err == nil {
			c.state = StateConnected
			c.log.Info("Database connection successful")
			return true
		}

		c.log.WithFields(diagnose(err)).
			Errorf("Database connection failed (attempt %d/%d)", c.attempt, c.maxAttempts)

		if c.attempt == c.maxAttempts {
			break
		}

		wait := LinearDelay(c.baseDelay, c.attempt)
		c.log.Infof("Retrying in %s seconds...", strconv.FormatFloat(wait.Seconds(), 'f', -1, 64))
		if err := c.sleep(ctx, wait); err != nil {
			c.log.WithError(err).Warn("Database connection retries cancelled")
			break
		}
	}

	c.state = StateExhausted
	return false
}

// LinearDelay returns base × attempt (attempt is 1-indexed).
func LinearDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(attempt)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// diagnose extracts log fields from a connection error. The values are for
// operators only and never drive control flow.
func diagnose(err error) logrus.Fields {
	fields := logrus.Fields{
		"error": err.Error(),
		"code":  "",
		"host":  "unknown",
		"port":  "unknown",
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["code"] = pgErr.Code
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) && connErr.Config != nil {
		fields["host"] = connErr.Config.Host
		fields["port"] = strconv.Itoa(int(connErr.Config.Port))
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Addr != nil {
		if host, port, splitErr := net.SplitHostPort(opErr.Addr.String()); splitErr == nil {
			fields["host"] = host
			fields["port"] = port
		}
	}

	return fields
}
