package services

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDocsServiceGeneratesPDFs(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	bookingSvc, mock := newBookingService(t, now)
	svc := DocsService{Bookings: bookingSvc}

	expectBookingLoad := func() {
		mock.ExpectQuery("FROM bookings WHERE id=").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
				1, "BK-aaaaaaaaaaaaaaaa", 7, 5, now.AddDate(0, 0, 30), "air", "economy", 2, 300.0, "confirmed", "unscanned", now, now,
			))
		expectAvenueRow(mock, now)
		mock.ExpectQuery("SELECT id, username").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "alice", "alice@example.com", "member", "hash", now))
		mock.ExpectQuery("FROM transactions WHERE booking_id=").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(transactionCols).AddRow(
				21, "TXN-bbbbbbbbbbbbbbbb", 1, 300.0, "stripe", "success", "payment", now,
			))
	}

	expectBookingLoad()
	pdf, filename, err := svc.GenerateETicket(1)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(filename, "ETICKET_") {
		t.Fatalf("GenerateETicket returned empty data or bad filename %q", filename)
	}

	expectBookingLoad()
	invoice, invName, err := svc.GenerateInvoice(1)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || !strings.HasPrefix(invName, "INVOICE_") {
		t.Fatalf("GenerateInvoice returned empty data or bad filename %q", invName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("BK-abc/def:ghi"); got != "BK-abc_def_ghi" {
		t.Fatalf("safeFilenamePart = %q", got)
	}
	if got := safeFilenamePart("  "); got != "NA" {
		t.Fatalf("safeFilenamePart on blank = %q", got)
	}
}
