package validators

import (
	"regexp"
	"strings"
	"time"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/utils"
)

// RefundWindow is how long after a completed payment a refund may be requested.
const RefundWindow = 24 * time.Hour

var referencePatterns = map[models.PaymentMethod]struct {
	pattern *regexp.Regexp
	msg     string
}{
	models.MethodMobileMoney:  {regexp.MustCompile(`^[A-Z0-9]{8,12}$`), "Invalid mobile money reference number"},
	models.MethodBankCard:     {regexp.MustCompile(`^[A-Z]-\d{6}$`), "Invalid card payment reference"},
	models.MethodBankTransfer: {regexp.MustCompile(`^BT-\d{8}$`), "Invalid bank transfer reference"},
}

// Payment validates a payment submission. The result is Pending and stamped with now.
func Payment(in models.PaymentInput, now time.Time) (models.Payment, error) {
	if in.BookingID <= 0 || anyBlank(in.Amount, in.Method, in.Reference) {
		return models.Payment{}, domain.Invalid("", "All fields are required")
	}

	amount, err := utils.ParseAmount(in.Amount)
	if err != nil || amount <= 0 {
		return models.Payment{}, domain.Invalid("amount", "Amount must be a positive number")
	}

	method := models.PaymentMethod(clean(in.Method))
	rule, ok := referencePatterns[method]
	if !ok {
		return models.Payment{}, domain.Invalid("method", "Invalid payment method")
	}

	reference := strings.TrimSpace(in.Reference)
	if !rule.pattern.MatchString(reference) {
		return models.Payment{}, domain.Invalid("reference", rule.msg)
	}

	return models.Payment{
		BookingID: in.BookingID,
		Amount:    amount,
		Method:    method,
		Reference: reference,
		Status:    models.PaymentPending,
		Timestamp: now,
	}, nil
}

// Refund checks that p may be refunded at now.
func Refund(p models.Payment, now time.Time) error {
	if p.Status != models.PaymentCompleted {
		return domain.Invalid("status", "Only completed payments can be refunded")
	}
	if now.Sub(p.Timestamp) > RefundWindow {
		return domain.Invalid("timestamp", "Refunds are only available within 24 hours of payment")
	}
	return nil
}
