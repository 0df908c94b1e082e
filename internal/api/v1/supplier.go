package v1

import (
	"net/http"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/service"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	service service.SupplierService
	log     *logger.Logger
}

func NewSupplierHandler(service service.SupplierService, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.SaveSupplierRequest true "Supplier"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req dto.SaveSupplierRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	req.ID = 0

	resp, err := h.service.SaveSupplier(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a supplier
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetSupplier(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Param filter query types.SupplierFilter false "Filter"
// @Param page query types.PageRequest false "Page"
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	var filter types.SupplierFilter
	if err := bindQuery(c, &filter); err != nil {
		c.Error(err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.ListSuppliers(c.Request.Context(), &filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a supplier
// @Description Blank fields keep their stored value
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param supplier body dto.SaveSupplierRequest true "Supplier"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.SaveSupplierRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	req.ID = id

	resp, err := h.service.SaveSupplier(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a supplier
// @Tags Suppliers
// @Param id path int true "Supplier ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteSupplier(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
