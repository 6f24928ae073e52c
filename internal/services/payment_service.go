package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"
	"zambus/internal/repositories"
	"zambus/internal/utils"
	"zambus/internal/validators"
)

// Gateway charges a validated payment.
type Gateway interface {
	Charge(ctx context.Context, p models.Payment) error
}

// SimulatedGateway declines a fixed share of charges at random.
type SimulatedGateway struct {
	FailureRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulatedGateway(failureRate float64, seed int64) *SimulatedGateway {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SimulatedGateway{FailureRate: failureRate, rnd: rand.New(rand.NewSource(seed))}
}

func (g *SimulatedGateway) Charge(ctx context.Context, p models.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	roll := g.rnd.Float64()
	g.mu.Unlock()
	if roll < g.FailureRate {
		return domain.ProcessingError{Msg: "Payment processing failed. Please try again."}
	}
	return nil
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, p models.Payment) error

func (f GatewayFunc) Charge(ctx context.Context, p models.Payment) error { return f(ctx, p) }

type PaymentService struct {
	Env
	Gateway Gateway
}

// List returns a passenger's payments, or the payments for bookings on an
// operator's routes.
func (s PaymentService) List(actor domain.RequestContext) ([]models.Payment, error) {
	var out []models.Payment
	err := s.view(func(st *db.State) error {
		out = []models.Payment{}
		for _, p := range (repositories.PaymentRepo{S: st}).List(0) {
			if canSeePayment(st, actor, p) {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

func (s PaymentService) Get(actor domain.RequestContext, id domain.ID) (models.Payment, error) {
	var out models.Payment
	err := s.view(func(st *db.State) error {
		p, err := repositories.PaymentRepo{S: st}.Get(id)
		if err != nil {
			return err
		}
		if !canSeePayment(st, actor, p) {
			return domain.NotFoundError{Resource: "Payment"}
		}
		out = p
		return nil
	})
	return out, err
}

func canSeePayment(st *db.State, actor domain.RequestContext, p models.Payment) bool {
	if actor.Role != domain.RoleCompany {
		return p.UserID == actor.UserID
	}
	b, err := repositories.BookingRepo{S: st}.Get(p.BookingID)
	return err == nil && canSeeBooking(st, actor, b)
}

// Create processes a payment for one of the passenger's bookings.
func (s PaymentService) Create(ctx context.Context, actor domain.RequestContext, in models.PaymentInput) (models.Payment, error) {
	var payment models.Payment
	err := s.mutator(actor, s.paymentLatency()).Run(ctx, Op{
		Module:       "payments",
		Action:       "create",
		FailureTitle: "Payment Failed",
		Validate: func() error {
			var err error
			payment, err = validators.Payment(in, s.now())
			return err
		},
		Commit: func(st *db.State) error {
			booking, err := repositories.BookingRepo{S: st}.Get(payment.BookingID)
			if err != nil || booking.UserID != actor.UserID {
				return domain.NotFoundError{Resource: "Booking"}
			}
			if booking.Status == models.BookingCancelled {
				return domain.Invalid("bookingId", "Cannot pay for a cancelled booking")
			}
			repo := repositories.PaymentRepo{S: st}
			if repo.PaidFor(booking.ID) {
				return domain.ConflictError{Resource: "Payment", Msg: "This booking has already been paid"}
			}
			if repo.ReferenceTaken(payment.Reference) {
				return domain.ConflictError{Resource: "Payment", Msg: "This reference number has already been used"}
			}

			payment.UserID = actor.UserID
			payment.Route = booking.Origin + " → " + booking.Destination
			payment.DepartureDate = booking.DepartureDate
			if err := s.gateway().Charge(ctx, payment); err != nil {
				return err
			}
			payment.Status = models.PaymentCompleted
			payment = repo.Insert(payment)
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Payment Successful", fmt.Sprintf("Payment of %s via %s has been processed",
				utils.FormatKwacha(payment.Amount), payment.Method))
		},
	})
	return payment, err
}

// Refund refunds a completed payment within the refund window.
func (s PaymentService) Refund(ctx context.Context, actor domain.RequestContext, id domain.ID, confirmed bool) (models.Payment, error) {
	var payment models.Payment
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:       "payments",
		Action:       "refund",
		Prompt:       "Are you sure you want to request a refund for this payment?",
		Confirmed:    confirmed,
		FailureTitle: "Refund Failed",
		Commit: func(st *db.State) error {
			repo := repositories.PaymentRepo{S: st}
			current, err := repo.Get(id)
			if err != nil || current.UserID != actor.UserID {
				return domain.NotFoundError{Resource: "Payment"}
			}
			if err := validators.Refund(current, s.now()); err != nil {
				return err
			}
			current.Status = models.PaymentRefunded
			payment = current
			return repo.Replace(current)
		},
		Success: func() notify.Toast {
			return notify.Success("Refund Requested", fmt.Sprintf("Refund of %s has been initiated", utils.FormatKwacha(payment.Amount)))
		},
	})
	return payment, err
}

func (s PaymentService) paymentLatency() time.Duration {
	if s.PaymentLatency > 0 {
		return s.PaymentLatency
	}
	return s.Latency
}

func (s PaymentService) gateway() Gateway {
	if s.Gateway != nil {
		return s.Gateway
	}
	return GatewayFunc(func(context.Context, models.Payment) error { return nil })
}
