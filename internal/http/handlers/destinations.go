package handlers

import (
	"fmt"
	"net/http"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	Service services.DestinationService
}

type createDestinationRequest struct {
	Name   string `json:"name"`
	Air    bool   `json:"air"`
	Coach  bool   `json:"coach"`
	Train  bool   `json:"train"`
	Status string `json:"status"`
}

// POST /api/destinations
func (h DestinationHandler) Create(c *gin.Context) {
	var req createDestinationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	dest, err := h.Service.CreateDestination(services.CreateDestinationInput{
		Name:   req.Name,
		Air:    req.Air,
		Coach:  req.Coach,
		Train:  req.Train,
		Status: req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "destinations", "create", fmt.Sprintf("destination_id=%d", dest.ID))
	c.JSON(http.StatusCreated, gin.H{"destination": destinationJSON(dest)})
}

// GET /api/destinations?active=true&mode=air
func (h DestinationHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	if mode := c.Query("mode"); mode != "" {
		dests, err := h.Service.ListByMode(mode, activeOnly)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"destinations": destinationsJSON(dests)})
		return
	}

	dests, err := h.Service.ListDestinations(activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinationsJSON(dests)})
}

// GET /api/destinations/:id
func (h DestinationHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	dest, err := h.Service.GetDestination(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": destinationJSON(dest)})
}

type updateDestinationRequest struct {
	Name   *string `json:"name"`
	Air    *bool   `json:"air"`
	Coach  *bool   `json:"coach"`
	Train  *bool   `json:"train"`
	Status *string `json:"status"`
}

// PUT /api/destinations/:id
func (h DestinationHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req updateDestinationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	dest, err := h.Service.UpdateDestination(id, services.UpdateDestinationInput{
		Name:   req.Name,
		Air:    req.Air,
		Coach:  req.Coach,
		Train:  req.Train,
		Status: req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "destinations", "update", fmt.Sprintf("destination_id=%d", dest.ID))
	c.JSON(http.StatusOK, gin.H{"destination": destinationJSON(dest)})
}

// DELETE /api/destinations/:id
func (h DestinationHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	dest, err := h.Service.DeleteDestination(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "destinations", "delete", fmt.Sprintf("destination_id=%d", dest.ID))
	c.JSON(http.StatusOK, gin.H{"message": "destination deleted"})
}
