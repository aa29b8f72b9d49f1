package docs

import (
	"bytes"
	"fmt"

	"travelease/internal/domain/models"
	"travelease/internal/services"
	"travelease/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InvoiceData is everything the invoice renderer needs; the caller loads
// and authorizes the booking.
type InvoiceData struct {
	Booking      models.Booking
	CustomerName string
	Description  string
}

// BuildInvoicePDF renders a simple A4 invoice for one booking.
func BuildInvoicePDF(d InvoiceData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVELEASE INVOICE")
	pdf.Ln(12)

	base := d.Booking.TotalAmount
	payable := services.Payable(base)
	tax := utils.Round2(payable - base)

	end := "-"
	if d.Booking.EndDate != nil {
		end = utils.FormatDateTime(*d.Booking.EndDate)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref    : %s", d.Booking.Reference),
		fmt.Sprintf("Customer       : %s", safe(d.CustomerName)),
		fmt.Sprintf("Service        : %s", safe(d.Description)),
		fmt.Sprintf("Start          : %s", utils.FormatDateTime(d.Booking.StartDate)),
		fmt.Sprintf("End            : %s", end),
		fmt.Sprintf("Status         : %s / %s", d.Booking.Status, d.Booking.PaymentStatus),
		"",
		fmt.Sprintf("Base Amount    : Rs %s", utils.FormatMoney(base)),
		fmt.Sprintf("GST (18%%)      : Rs %s", utils.FormatMoney(tax)),
		fmt.Sprintf("Total Payable  : Rs %s", utils.FormatMoney(payable)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice is system generated. Amounts are in Indian Rupees.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("invoice_%s.pdf", d.Booking.Reference)
	return buf.Bytes(), name, nil
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
