package repositories

import (
	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
	"zambus/internal/utils"
)

type PaymentRepo struct {
	S *db.State
}

func (r PaymentRepo) List(userID domain.ID) []models.Payment {
	out := []models.Payment{}
	for _, v := range r.S.Payments {
		if userID == 0 || v.UserID == userID {
			out = append(out, v)
		}
	}
	return out
}

func (r PaymentRepo) index(id domain.ID) int {
	for i, v := range r.S.Payments {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (r PaymentRepo) Get(id domain.ID) (models.Payment, error) {
	if i := r.index(id); i >= 0 {
		return r.S.Payments[i], nil
	}
	return models.Payment{}, domain.NotFoundError{Resource: "Payment"}
}

func (r PaymentRepo) ReferenceTaken(ref string) bool {
	for _, v := range r.S.Payments {
		if utils.SameText(v.Reference, ref) {
			return true
		}
	}
	return false
}

// PaidFor reports whether a completed payment already covers bookingID.
func (r PaymentRepo) PaidFor(bookingID domain.ID) bool {
	for _, v := range r.S.Payments {
		if v.BookingID == bookingID && v.Status == models.PaymentCompleted {
			return true
		}
	}
	return false
}

func (r PaymentRepo) Insert(v models.Payment) models.Payment {
	v.ID = r.S.NextID(storage.KeyPayments)
	r.S.Payments = append(r.S.Payments, v)
	return v
}

func (r PaymentRepo) Replace(v models.Payment) error {
	i := r.index(v.ID)
	if i < 0 {
		return domain.NotFoundError{Resource: "Payment"}
	}
	r.S.Payments[i] = v
	return nil
}
