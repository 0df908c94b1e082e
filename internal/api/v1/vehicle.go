package v1

import (
	"net/http"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/service"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	service service.VehicleService
	log     *logger.Logger
}

func NewVehicleHandler(service service.VehicleService, log *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param vehicle body dto.SaveVehicleRequest true "Vehicle"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req dto.SaveVehicleRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	req.ID = 0

	resp, err := h.service.SaveVehicle(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a vehicle
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Param filter query types.VehicleFilter false "Filter"
// @Param page query types.PageRequest false "Page"
// @Success 200 {object} dto.ListVehiclesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var filter types.VehicleFilter
	if err := bindQuery(c, &filter); err != nil {
		c.Error(err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.ListVehicles(c.Request.Context(), &filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a vehicle
// @Description Blank fields keep their stored value
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param vehicle body dto.SaveVehicleRequest true "Vehicle"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.SaveVehicleRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	req.ID = id

	resp, err := h.service.SaveVehicle(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a vehicle
// @Tags Vehicles
// @Param id path int true "Vehicle ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
