package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AvenueHandler struct {
	Service      services.AvenueService
	Availability services.AvailabilityService
}

type createAvenueRequest struct {
	LeaveDestinationID  int64   `json:"leave_destination_id"`
	ArriveDestinationID int64   `json:"arrive_destination_id"`
	LeaveTime           string  `json:"leave_time"`
	ArriveTime          string  `json:"arrive_time"`
	Price               float64 `json:"price"`
	Status              string  `json:"status"`
}

// POST /api/avenues
func (h AvenueHandler) Create(c *gin.Context) {
	var req createAvenueRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	avenue, err := h.Service.CreateAvenue(services.CreateAvenueInput{
		LeaveDestinationID:  req.LeaveDestinationID,
		ArriveDestinationID: req.ArriveDestinationID,
		LeaveTime:           req.LeaveTime,
		ArriveTime:          req.ArriveTime,
		Price:               req.Price,
		Status:              req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "avenues", "create", fmt.Sprintf("avenue_id=%d", avenue.ID))
	c.JSON(http.StatusCreated, gin.H{"avenue": avenueJSON(avenue)})
}

// GET /api/avenues?leave_id=&arrive_id=
func (h AvenueHandler) List(c *gin.Context) {
	avenues, err := h.Service.ListAvenues(c.Query("leave_id"), c.Query("arrive_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(avenues))
	for _, a := range avenues {
		out = append(out, avenueJSON(a))
	}
	c.JSON(http.StatusOK, gin.H{"avenues": out})
}

// GET /api/avenues/available?from=&to=&date=&passenger=&mode=
func (h AvenueHandler) Available(c *gin.Context) {
	from, err := strconv.ParseInt(c.Query("from"), 10, 64)
	if err != nil || from <= 0 {
		RespondError(c, http.StatusBadRequest, "from: departure destination is required", nil)
		return
	}

	req := services.AvailabilityRequest{
		From:      from,
		Date:      c.Query("date"),
		Passenger: 1,
		Mode:      c.Query("mode"),
	}
	if to := c.Query("to"); to != "" {
		id, err := strconv.ParseInt(to, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "to: invalid destination id", nil)
			return
		}
		req.To = &id
	}
	if p := c.Query("passenger"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "passenger: passenger count must be positive integer", nil)
			return
		}
		req.Passenger = n
	}

	offers, err := h.Availability.Search(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerJSON(o))
	}
	c.JSON(http.StatusOK, gin.H{"offers": out})
}

// GET /api/avenues/:id
func (h AvenueHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	avenue, err := h.Service.GetAvenue(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avenue": avenueJSON(avenue)})
}

type updateAvenueRequest struct {
	LeaveDestinationID  *int64   `json:"leave_destination_id"`
	ArriveDestinationID *int64   `json:"arrive_destination_id"`
	LeaveTime           *string  `json:"leave_time"`
	ArriveTime          *string  `json:"arrive_time"`
	Price               *float64 `json:"price"`
	Status              *string  `json:"status"`
}

// PUT /api/avenues/:id
func (h AvenueHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req updateAvenueRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	avenue, err := h.Service.UpdateAvenue(id, services.UpdateAvenueInput{
		LeaveDestinationID:  req.LeaveDestinationID,
		ArriveDestinationID: req.ArriveDestinationID,
		LeaveTime:           req.LeaveTime,
		ArriveTime:          req.ArriveTime,
		Price:               req.Price,
		Status:              req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "avenues", "update", fmt.Sprintf("avenue_id=%d", avenue.ID))
	c.JSON(http.StatusOK, gin.H{"avenue": avenueJSON(avenue)})
}

// DELETE /api/avenues/:id
func (h AvenueHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	avenue, err := h.Service.DeleteAvenue(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "avenues", "delete", fmt.Sprintf("avenue_id=%d", avenue.ID))
	c.JSON(http.StatusOK, gin.H{"message": "avenue deleted"})
}
