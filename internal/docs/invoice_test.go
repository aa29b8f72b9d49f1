package docs

import (
	"bytes"
	"testing"
	"time"

	"travelease/internal/domain/models"
)

func TestBuildInvoicePDF(t *testing.T) {
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)
	data, name, err := BuildInvoicePDF(InvoiceData{
		Booking: models.Booking{
			ID:            42,
			Reference:     "ref-1",
			Kind:          models.KindHotel,
			StartDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
			EndDate:       &end,
			TotalAmount:   500,
			Status:        models.BookingConfirmed,
			PaymentStatus: models.PaymentStatusPaid,
		},
		CustomerName: "Asha",
		Description:  "hotel booking: Sea View",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	if name != "invoice_ref-1.pdf" {
		t.Errorf("filename = %q", name)
	}
}

func TestBuildInvoicePDFNoEndDate(t *testing.T) {
	data, _, err := BuildInvoicePDF(InvoiceData{
		Booking: models.Booking{
			Reference:   "ref-2",
			Kind:        models.KindCab,
			StartDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local),
			TotalAmount: 340,
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty PDF")
	}
}
