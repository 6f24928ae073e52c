package services

import (
	"context"
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/notify"
	"zambus/internal/utils"
)

const (
	DefaultLatency        = time.Second
	DefaultPaymentLatency = 2 * time.Second
	genericFailure        = "Something went wrong. Please try again."
)

// Env is what every service needs: the store, the toast channel, the
// simulated latency and a clock. Handlers copy it per request with the
// request id filled in.
type Env struct {
	DB             *db.DB
	Notifier       notify.Notifier
	Latency        time.Duration
	PaymentLatency time.Duration
	Now            func() time.Time
	RequestID      string
}

// WithRequest returns a copy tagged with requestID.
func (e Env) WithRequest(requestID string) Env {
	e.RequestID = requestID
	return e
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Env) notifier() notify.Notifier {
	if e.Notifier != nil {
		return e.Notifier
	}
	return notify.Discard{}
}

// mutator builds a pipeline whose toasts go to actor only.
func (e Env) mutator(actor domain.RequestContext, latency time.Duration) Mutator {
	return Mutator{
		DB:        e.DB,
		Notifier:  e.notifier(),
		Latency:   latency,
		RequestID: e.RequestID,
		UserID:    actor.UserID,
	}
}

func (e Env) view(fn func(*db.State) error) error {
	return e.DB.View(fn)
}

// Op describes one mutation.
type Op struct {
	Module string
	Action string

	// Validate runs before anything else and must not touch the store.
	Validate func() error

	// Prompt marks the operation as destructive; it runs only when Confirmed.
	Prompt    string
	Confirmed bool

	// Commit probes and applies the change against a private copy of the state.
	Commit func(*db.State) error

	// Success builds the toast sent after commit.
	Success func() notify.Toast
	// FailureTitle heads the destructive toast sent when any stage fails.
	FailureTitle string
}

// Mutator runs validate, confirmation, latency, probe+commit and notify in order.
// A failing stage stops the pipeline before anything is committed.
type Mutator struct {
	DB        *db.DB
	Notifier  notify.Notifier
	Latency   time.Duration
	RequestID string
	// UserID addresses the toasts.
	UserID domain.ID
}

func (m Mutator) Run(ctx context.Context, op Op) error {
	if op.Validate != nil {
		if err := op.Validate(); err != nil {
			return m.fail(ctx, op, err)
		}
	}

	if op.Prompt != "" && !op.Confirmed {
		return domain.ConfirmationRequiredError{Prompt: op.Prompt}
	}

	if err := sleep(ctx, m.Latency); err != nil {
		utils.LogEvent(m.RequestID, op.Module, op.Action, "abandoned: "+err.Error())
		return err
	}

	if op.Commit != nil {
		if err := m.DB.Update(ctx, op.Commit); err != nil {
			return m.fail(ctx, op, err)
		}
	}

	utils.LogEvent(m.RequestID, op.Module, op.Action, "ok")
	if op.Success != nil {
		t := op.Success()
		t.RequestID = m.RequestID
		t.UserID = m.UserID
		m.Notifier.Notify(ctx, t)
	}
	return nil
}

func (m Mutator) fail(ctx context.Context, op Op, err error) error {
	utils.LogError(m.RequestID, op.Module, op.Action, err)

	title := op.FailureTitle
	if title == "" {
		title = "Error"
	}
	t := notify.Failure(title, describe(err))
	t.RequestID = m.RequestID
	t.UserID = m.UserID
	m.Notifier.Notify(ctx, t)
	return err
}

// describe returns the user-facing text of err. Anything not raised by the
// domain is reported generically.
func describe(err error) string {
	switch {
	case domain.IsInternal(err):
		return genericFailure
	case domain.IsValidation(err), domain.IsConflict(err), domain.IsNotFound(err),
		domain.IsForbidden(err), domain.IsProcessing(err), domain.IsUnauthorized(err):
		return err.Error()
	}
	return genericFailure
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
