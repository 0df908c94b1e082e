package v1

import (
	"strconv"
	"strings"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive record identifier from the named path param
func parseIDParam(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ierr.NewError("invalid id").
			WithHint("Record id must be a positive integer").
			WithReportableDetails(map[string]any{name: raw}).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}

// bindPage reads limit and offset from the query string
func bindPage(c *gin.Context) (types.PageRequest, error) {
	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, ierr.WithError(err).
			WithHint("Invalid pagination parameters").
			Mark(ierr.ErrValidation)
	}
	if page.Limit < 0 || page.Offset < 0 {
		return page, ierr.NewError("negative pagination").
			WithHint("Limit and offset cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return page, nil
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func bindQuery(c *gin.Context, filter any) error {
	if err := c.ShouldBindQuery(filter); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}
	return nil
}
