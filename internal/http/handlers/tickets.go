package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"buslink/internal/http/middleware"
	"buslink/internal/repositories"
	"buslink/internal/services"

	"github.com/gin-gonic/gin"
)

func ticketService(c *gin.Context) services.TicketService {
	return services.TicketService{
		Tickets:       repositories.TicketRepository{},
		Notifications: repositories.NotificationRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

// GET /api/tickets?routeId=&vendorId=&status=&customerEmail=
func GetTickets(c *gin.Context) {
	routeID, _ := strconv.ParseInt(strings.TrimSpace(c.Query("routeId")), 10, 64)
	vendorID, _ := strconv.ParseInt(strings.TrimSpace(c.Query("vendorId")), 10, 64)

	repo := repositories.TicketRepository{}
	tickets, err := repo.FindAll(repositories.TicketFilter{
		RouteID:       routeID,
		VendorID:      vendorID,
		Status:        strings.TrimSpace(c.Query("status")),
		CustomerEmail: strings.TrimSpace(c.Query("customerEmail")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// GET /api/tickets/:id
func GetTicketByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.TicketRepository{}
	ticket, err := repo.FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// POST /api/tickets
func CreateTicket(c *gin.Context) {
	var req services.CreateTicketInput
	if !BindJSONOrError(c, &req) {
		return
	}

	ticket, err := ticketService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// PUT /api/tickets/:id/confirm
func ConfirmTicket(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	ticket, err := ticketService(c).Confirm(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// PUT /api/tickets/:id/cancel
func CancelTicket(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	ticket, err := ticketService(c).Cancel(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// PUT /api/tickets/:id/refund
func RefundTicket(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	ticket, err := ticketService(c).Refund(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GET /api/tickets/:id/e-ticket
func GetTicketETicketPDF(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{
		Tickets:   repositories.TicketRepository{},
		Routes:    routeStore(),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
