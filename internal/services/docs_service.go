package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"travelbackend/internal/domain/models"
	"travelbackend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets and invoices as PDF downloads.
type DocsService struct {
	Bookings BookingService
}

// GenerateETicket renders the e-ticket for one booking. Returns the PDF
// bytes and a suggested filename.
func (s DocsService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	booking, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildETicketPDF(booking)
}

// GenerateInvoice renders the payment invoice for one booking.
func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	booking, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildInvoicePDF(booking)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	from, to, leaveTime := routeParts(b)
	traveller := ""
	if b.User != nil {
		traveller = b.User.Username
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref  : %s", safe(b.Identifier, "-")),
		fmt.Sprintf("Traveller    : %s", safe(traveller, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(from, "-"), safe(to, "-")),
		fmt.Sprintf("Date / Time  : %s %s", utils.FormatDate(b.Date), safe(timeHM(leaveTime), "-")),
		fmt.Sprintf("Mode         : %s", titleCase(string(b.Mode))),
		fmt.Sprintf("Class        : %s", titleCase(string(b.Type))),
		fmt.Sprintf("Seats        : %d", b.Seat),
		fmt.Sprintf("Status       : %s", titleCase(string(b.Status))),
		fmt.Sprintf("Ticket       : %s", titleCase(string(b.Ticket))),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: present this e-ticket at boarding. The ticket is scanned once at the gate.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.Identifier))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No  : INV-"+safe(b.Identifier, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued      : "+time.Now().UTC().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	traveller, email := "", ""
	if b.User != nil {
		traveller, email = b.User.Username, b.User.Email
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name   : %s", safe(traveller, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email  : %s", safe(email, "-")))
	pdf.Ln(10)

	from, to, leaveTime := routeParts(b)
	desc := fmt.Sprintf("%s journey %s -> %s (%s %s), %s class, %d seat(s)",
		titleCase(string(b.Mode)),
		safe(from, "-"), safe(to, "-"),
		utils.FormatDate(b.Date), safe(timeHM(leaveTime), "-"),
		string(b.Type), b.Seat,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(b.Price))
	pdf.Ln(10)

	if len(b.Transactions) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Transactions:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, txn := range b.Transactions {
			pdf.Cell(0, 6, fmt.Sprintf("%s  %s  %s  %s",
				txn.Identifier, string(txn.Type), utils.FormatMoney(txn.Amount), string(txn.Status)))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(b.Identifier))
	return buf.Bytes(), filename, nil
}

func routeParts(b models.Booking) (from, to, leaveTime string) {
	if b.Avenue == nil {
		return "", "", ""
	}
	leaveTime = b.Avenue.LeaveTime
	if b.Avenue.LeaveDestination != nil {
		from = b.Avenue.LeaveDestination.Name
	}
	if b.Avenue.ArriveDestination != nil {
		to = b.Avenue.ArriveDestination.Name
	}
	return from, to, leaveTime
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func timeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
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
