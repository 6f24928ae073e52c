package services

import (
	"bytes"
	"fmt"
	"strings"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets and payment receipts as PDF.
type DocsService struct {
	Env
}

// ETicket renders the ticket of a booking the actor may see.
func (s DocsService) ETicket(actor domain.RequestContext, bookingID domain.ID) ([]byte, string, error) {
	b, err := BookingService{Env: s.Env}.Get(actor, bookingID)
	if err != nil {
		return nil, "", err
	}
	if b.Status == models.BookingCancelled {
		return nil, "", domain.Invalid("status", "Cancelled bookings have no e-ticket")
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(b)
}

// Receipt renders the receipt of a payment the actor may see.
func (s DocsService) Receipt(actor domain.RequestContext, paymentID domain.ID) ([]byte, string, error) {
	p, err := PaymentService{Env: s.Env}.Get(actor, paymentID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("payment_id=%d", paymentID))
	return buildReceiptPDF(p)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ZAMBUS E-TICKET")
	pdf.Ln(12)

	plan := "None"
	if p, ok := models.FindInsurancePlan(b.InsurancePlan); ok {
		plan = p.Name
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(b.PassengerName, "-")),
		fmt.Sprintf("Phone          : %s", safe(b.PassengerPhone, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(b.Origin, "-"), safe(b.Destination, "-")),
		fmt.Sprintf("Departure      : %s %s", safe(b.DepartureDate, "-"), safe(b.DepartureTime, "-")),
		fmt.Sprintf("Seat           : %s", safe(b.SeatNumber, "-")),
		fmt.Sprintf("Insurance      : %s", plan),
		fmt.Sprintf("Fare           : %s", utils.FormatKwacha(b.Fare)),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Ticket Code    : ZB-%06d-%s", b.ID, safeFilenamePart(b.SeatNumber)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Valid for one passenger. Please arrive 30 minutes before departure and present this ticket when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.PassengerName+"_"+b.SeatNumber))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(p models.Payment) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Receipt No  : RCP-%06d", p.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date        : "+utils.FormatDateTime(p.Timestamp))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Reference   : "+safe(p.Reference, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Method      : "+safe(string(p.Method), "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	// gofpdf core fonts are cp1252; the arrow in stored route labels is not.
	route := strings.ReplaceAll(p.Route, "→", "->")
	pdf.MultiCell(0, 6, fmt.Sprintf("Booking #%d  %s (%s)", p.BookingID, safe(route, "-"), safe(p.DepartureDate, "-")), "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Amount: "+utils.FormatKwacha(p.Amount))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Status: "+string(p.Status))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", p.ID, safeFilenamePart(p.Reference))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
