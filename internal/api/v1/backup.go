package v1

import (
	"net/http"

	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/service"
	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	service service.BackupService
	log     *logger.Logger
}

func NewBackupHandler(service service.BackupService, log *logger.Logger) *BackupHandler {
	return &BackupHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a backup
// @Description Copies every record set file to the configured backup target
// @Tags Backups
// @Produce json
// @Success 201 {object} dto.BackupResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /backups [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	resp, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Restore a backup
// @Description Replaces the record set files with the ones stored in the backup
// @Tags Backups
// @Produce json
// @Param id path string true "Backup ID"
// @Success 200 {object} dto.RestoreBackupResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /backups/{id}/restore [post]
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	resp, err := h.service.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
