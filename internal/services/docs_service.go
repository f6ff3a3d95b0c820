package services

import (
	"bytes"
	"fmt"
	"strings"

	"buslink/internal/repositories"
	"buslink/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a ticket's e-ticket PDF.
type DocsService struct {
	Tickets   repositories.TicketRepository
	Routes    repositories.RouteStore
	RequestID string

	// Loader is swappable in tests to avoid DB access.
	Loader func(int64) (TicketDocData, error)
}

type TicketDocData struct {
	TicketID      int64
	BookingRef    string
	CustomerName  string
	CustomerPhone string
	SeatNumber    int
	Origin        string
	Destination   string
	DepartureTime string
	TravelDate    string
	VendorID      int64
	Amount        int64
	Status        string
}

func (s DocsService) GenerateETicket(ticketID int64) ([]byte, string, error) {
	data, err := s.loadTicketDocData(ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketDocData(ticketID int64) (TicketDocData, error) {
	if s.Loader != nil {
		return s.Loader(ticketID)
	}

	var out TicketDocData
	t, err := s.Tickets.FindOne(ticketID)
	if err != nil {
		return out, err
	}
	out.TicketID = t.ID
	out.BookingRef = t.BookingRef
	out.CustomerName = t.CustomerName
	out.CustomerPhone = t.CustomerPhone
	out.SeatNumber = t.SeatNumber
	out.TravelDate = t.TravelDate
	out.VendorID = t.VendorID
	out.Amount = t.Amount
	out.Status = t.Status

	if s.Routes != nil {
		if route, err := s.Routes.FindOne(t.RouteID); err == nil {
			out.Origin = route.Origin
			out.Destination = route.Destination
			out.DepartureTime = route.DepartureTime
		}
	}
	return out, nil
}

func buildETicketPDF(d TicketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ref   : %s", safe(d.BookingRef, "-")),
		fmt.Sprintf("Passenger     : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Phone         : %s", safe(d.CustomerPhone, "-")),
		fmt.Sprintf("Seat          : %d", d.SeatNumber),
		fmt.Sprintf("Route         : %s -> %s", safe(d.Origin, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Departure     : %s %s", safe(d.TravelDate, "-"), safe(d.DepartureTime, "-")),
		fmt.Sprintf("Amount        : %s", utils.FormatAmount(d.Amount)),
		fmt.Sprintf("Status        : %s", safe(d.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket covers one passenger (one seat). Present it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s_seat%d.pdf", safeFilenamePart(d.BookingRef), d.SeatNumber)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "ticket"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
