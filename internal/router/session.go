package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/session"
)

type SessionRouter struct {
	e       *echo.Echo
	manager *session.Manager
	stream  *session.StreamPublisher
}

type SessionRouterOption func(*SessionRouter)

// WithStream enables the server-sent events endpoint.
func WithStream(p *session.StreamPublisher) SessionRouterOption {
	return func(r *SessionRouter) {
		r.stream = p
	}
}

func NewSessionRouter(e *echo.Echo, manager *session.Manager, opts ...SessionRouterOption) *SessionRouter {
	r := &SessionRouter{
		e:       e,
		manager: manager,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SessionRouter) Bind() {
	g := r.e.Group("/api/v1/sessions")
	g.POST("", r.createHandler)
	g.GET("/:id", r.getHandler)
	g.POST("/:id/events", r.eventHandler)
	g.DELETE("/:id", r.deleteHandler)
	if r.stream != nil {
		g.GET("/:id/stream", r.streamHandler)
	}
}

// createHandler godoc
// @Summary Start a calculator session
// @Tags sessions
// @Produce json
// @Success 201 {object} session.Snapshot
// @Router /api/v1/sessions [post]
func (r *SessionRouter) createHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, r.manager.Create())
}

// getHandler godoc
// @Summary Get the display of a calculator session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (r *SessionRouter) getHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	snap, err := r.manager.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// eventHandler godoc
// @Summary Press a calculator key
// @Description glyph appends text to the display, clear empties it, result evaluates it.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.EventRequest true "Key press"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/sessions/{id}/events [post]
func (r *SessionRouter) eventHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	kind, err := calculator.ParseEventKind(req.Kind)
	if err != nil {
		return apperr.NewValidationWrap("invalid event", err)
	}
	if kind == calculator.Glyph && req.Text == "" {
		return apperr.NewValidation("glyph event requires text")
	}

	snap, err := r.manager.Dispatch(c.Request().Context(), id, calculator.Event{Kind: kind, Text: req.Text})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// deleteHandler godoc
// @Summary End a calculator session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (r *SessionRouter) deleteHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := r.manager.Delete(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// streamHandler godoc
// @Summary Stream display changes of a session
// @Description Server-sent events named "state", each carrying a session snapshot.
// @Tags sessions
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/sessions/{id}/stream [get]
func (r *SessionRouter) streamHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := r.manager.Get(id); err != nil {
		return err
	}

	r.stream.ServeStream(c.Response(), c.Request(), id)
	return nil
}
