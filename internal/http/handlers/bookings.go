package handlers

import (
	"fmt"
	"net/http"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Service services.BookingService
	Docs    services.DocsService
}

type createBookingRequest struct {
	AvenueID      int64   `json:"avenue_id"`
	Date          string  `json:"date"`
	Mode          string  `json:"mode"`
	Type          string  `json:"type"`
	Seat          int     `json:"seat"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.Service.CreateBooking(services.CreateBookingInput{
		AvenueID:      req.AvenueID,
		UserID:        middleware.AuthUserID(c),
		Date:          req.Date,
		Mode:          req.Mode,
		Type:          req.Type,
		Seat:          req.Seat,
		Price:         req.Price,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "create", "identifier="+booking.Identifier)
	c.JSON(http.StatusCreated, gin.H{"booking": bookingJSON(booking)})
}

// GET /api/bookings/mine
func (h BookingHandler) Mine(c *gin.Context) {
	bookings, err := h.Service.ListUserBookings(middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookingsJSON(bookings)})
}

// GET /api/bookings/:id — travellers can only read their own bookings.
func (h BookingHandler) Get(c *gin.Context) {
	booking, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bookingJSON(booking)})
}

// POST /api/bookings/:id/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	booking, ok := h.loadOwned(c)
	if !ok {
		return
	}

	cancelled, err := h.Service.CancelBooking(booking.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "cancel", "identifier="+cancelled.Identifier)
	c.JSON(http.StatusOK, gin.H{"booking": bookingJSON(cancelled)})
}

// GET /api/bookings?status=&user_id= (admin)
func (h BookingHandler) List(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Query("status"), c.Query("user_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookingsJSON(bookings)})
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/bookings/:id/status (admin)
func (h BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req updateBookingStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "update_status",
		fmt.Sprintf("identifier=%s status=%s", booking.Identifier, booking.Status))
	c.JSON(http.StatusOK, gin.H{"booking": bookingJSON(booking)})
}

// POST /api/bookings/:id/scan (admin)
func (h BookingHandler) Scan(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	booking, err := h.Service.ScanTicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "scan", "identifier="+booking.Identifier)
	c.JSON(http.StatusOK, gin.H{"booking": bookingJSON(booking)})
}

// GET /api/bookings/:id/e-ticket
func (h BookingHandler) ETicket(c *gin.Context) {
	booking, ok := h.loadOwned(c)
	if !ok {
		return
	}

	pdf, filename, err := h.Docs.GenerateETicket(booking.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id/invoice
func (h BookingHandler) Invoice(c *gin.Context) {
	booking, ok := h.loadOwned(c)
	if !ok {
		return
	}

	pdf, filename, err := h.Docs.GenerateInvoice(booking.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// loadOwned fetches the booking from :id and enforces that non-admin callers
// only touch their own bookings.
func (h BookingHandler) loadOwned(c *gin.Context) (models.Booking, bool) {
	id, ok := IDParam(c)
	if !ok {
		return models.Booking{}, false
	}
	booking, err := h.Service.GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return models.Booking{}, false
	}
	if middleware.AuthRole(c) != domain.RoleAdmin && booking.UserID != middleware.AuthUserID(c) {
		RespondError(c, http.StatusForbidden, "you can only access your own bookings", nil)
		return models.Booking{}, false
	}
	return booking, true
}
