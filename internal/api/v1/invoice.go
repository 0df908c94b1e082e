package v1

import (
	"net/http"
	"strings"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/service"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service service.InvoiceService
	config  *config.Configuration
	log     *logger.Logger
}

func NewInvoiceHandler(service service.InvoiceService, config *config.Configuration, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// @Summary Issue an invoice
// @Description Numbers, prices and authorizes a new invoice and appends it to the ledger
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body dto.IssueInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	var req dto.IssueInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.IssueInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an invoice
// @Tags Invoices
// @Produce json
// @Param number path string true "Invoice number" example(0001-00000001)
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{number} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	resp, err := h.service.GetInvoiceByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List invoices
// @Tags Invoices
// @Produce json
// @Param filter query types.InvoiceFilter false "Filter"
// @Param page query types.PageRequest false "Page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var filter types.InvoiceFilter
	if err := bindQuery(c, &filter); err != nil {
		c.Error(err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.ListInvoices(c.Request.Context(), &filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Next invoice number
// @Description Returns the number the next invoice would get without reserving it
// @Tags Invoices
// @Produce json
// @Param punto_venta query string false "Point of sale, defaults to the configured one"
// @Success 200 {object} dto.NextInvoiceNumberResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /invoices/next-number [get]
func (h *InvoiceHandler) NextInvoiceNumber(c *gin.Context) {
	pointOfSale := strings.TrimSpace(c.Query("punto_venta"))

	number, err := h.service.NextInvoiceNumber(c.Request.Context(), pointOfSale)
	if err != nil {
		c.Error(err)
		return
	}

	if pointOfSale == "" {
		pointOfSale = h.config.Business.PointOfSale
	}
	c.JSON(http.StatusOK, dto.NextInvoiceNumberResponse{
		PointOfSale: config.NormalizePointOfSale(pointOfSale),
		Number:      number,
	})
}
