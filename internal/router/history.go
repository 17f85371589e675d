package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

type HistoryRouter struct {
	e      *echo.Echo
	reader history.Reader
}

func NewHistoryRouter(e *echo.Echo, reader history.Reader) *HistoryRouter {
	return &HistoryRouter{
		e:      e,
		reader: reader,
	}
}

func (r *HistoryRouter) Bind() {
	g := r.e.Group("/api/v1/history")
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
}

// listHandler godoc
// @Summary List past calculations, newest first
// @Tags history
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[history.Record]
// @Router /api/v1/history [get]
func (r *HistoryRouter) listHandler(c echo.Context) error {
	page, err := pagination.ParseOffsetRequest(c.QueryParam("page"), c.QueryParam("size"))
	if err != nil {
		return apperr.NewValidationWrap("invalid pagination", err)
	}

	res, err := r.reader.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

// getHandler godoc
// @Summary Get one calculation
// @Tags history
// @Produce json
// @Param id path string true "Calculation ID"
// @Success 200 {object} history.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/history/{id} [get]
func (r *HistoryRouter) getHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rec, err := r.reader.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rec)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid id", err)
	}
	return id, nil
}
