package v1

import (
	"net/http"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/service"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/gin-gonic/gin"
)

// RecordHandler exposes the column keyed catalog of every record set
type RecordHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewRecordHandler(service service.CatalogService, log *logger.Logger) *RecordHandler {
	return &RecordHandler{
		service: service,
		log:     log,
	}
}

// @Summary List records
// @Description List the rows of a record set. Every query parameter other than limit and offset is a column filter.
// @Tags Records
// @Produce json
// @Param kind path string true "Record set" Enums(clients, vehicles, suppliers, invoices)
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /records/{kind} [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	kind := types.EntityKind(c.Param("kind"))

	page, err := bindPage(c)
	if err != nil {
		c.Error(err)
		return
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == "limit" || key == "offset" || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	rows, err := h.service.Load(c.Request.Context(), kind, filters)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.Paginate(rows, page))
}

// @Summary Get a record
// @Tags Records
// @Produce json
// @Param kind path string true "Record set"
// @Param id path int true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /records/{kind}/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	kind := types.EntityKind(c.Param("kind"))
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	row, found, err := h.service.GetByID(c.Request.Context(), kind, id)
	if err != nil {
		c.Error(err)
		return
	}
	if !found {
		c.Error(ierr.NewErrorf("%s %d not found", kind, id).
			WithHintf("Record %d does not exist", id).
			WithReportableDetails(map[string]any{"kind": kind, "id": id}).
			Mark(ierr.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, dto.RecordResponse{Kind: kind, Record: row})
}

// @Summary Insert or update a record
// @Description Rows without an id, or with an unknown one, are inserted. Blank values leave stored cells unchanged.
// @Tags Records
// @Accept json
// @Produce json
// @Param kind path string true "Record set" Enums(clients, vehicles, suppliers)
// @Param record body dto.UpsertRecordRequest true "Record"
// @Success 200 {object} dto.UpsertRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /records/{kind} [post]
func (h *RecordHandler) UpsertRecord(c *gin.Context) {
	kind := types.EntityKind(c.Param("kind"))

	var req dto.UpsertRecordRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	row, err := req.ToRow()
	if err != nil {
		c.Error(err)
		return
	}

	id, err := h.service.Upsert(c.Request.Context(), kind, row)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.UpsertRecordResponse{Kind: kind, ID: id})
}

// @Summary Append a record
// @Description Adds a row to the end of an append only record set
// @Tags Records
// @Accept json
// @Produce json
// @Param kind path string true "Record set" Enums(invoices)
// @Param record body dto.UpsertRecordRequest true "Record"
// @Success 201
// @Failure 400 {object} ierr.ErrorResponse
// @Router /records/{kind}/rows [post]
func (h *RecordHandler) AppendRecord(c *gin.Context) {
	kind := types.EntityKind(c.Param("kind"))

	var req dto.UpsertRecordRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	row, err := req.ToRow()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Append(c.Request.Context(), kind, row); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary Delete a record
// @Tags Records
// @Param kind path string true "Record set" Enums(clients, vehicles, suppliers)
// @Param id path int true "Record ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /records/{kind}/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	kind := types.EntityKind(c.Param("kind"))
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	removed, err := h.service.Delete(c.Request.Context(), kind, id)
	if err != nil {
		c.Error(err)
		return
	}
	if !removed {
		c.Error(ierr.NewErrorf("%s %d not found", kind, id).
			WithHintf("Record %d does not exist", id).
			WithReportableDetails(map[string]any{"kind": kind, "id": id}).
			Mark(ierr.ErrNotFound))
		return
	}

	c.Status(http.StatusNoContent)
}
