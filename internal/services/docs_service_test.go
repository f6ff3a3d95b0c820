package services

import (
	"bytes"
	"strings"
	"testing"

	"buslink/internal/domain"
)

func TestGenerateETicketUsesLoader(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (TicketDocData, error) {
			return TicketDocData{
				TicketID:      id,
				BookingRef:    "BLK-ABCD1234",
				CustomerName:  "Budi Santoso",
				SeatNumber:    8,
				Origin:        "Jakarta",
				Destination:   "Bandung",
				TravelDate:    "2026-04-01",
				DepartureTime: "07:30",
				Amount:        120000,
				Status:        "confirmed",
			}, nil
		},
	}

	pdfBytes, filename, err := svc.GenerateETicket(11)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdfBytes[:minInt(8, len(pdfBytes))])
	}
	if !strings.Contains(filename, "BLK-ABCD1234") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateETicketPropagatesNotFound(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (TicketDocData, error) {
			return TicketDocData{}, domain.NotFoundError{Resource: "ticket"}
		},
	}
	if _, _, err := svc.GenerateETicket(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
