package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/dto"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/internal/service"
)

type CalcRouter struct {
	e   *echo.Echo
	svc *service.Calculator
}

func NewCalcRouter(e *echo.Echo, svc *service.Calculator) *CalcRouter {
	return &CalcRouter{
		e:   e,
		svc: svc,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/tokenize", r.tokenizeHandler)
	g.POST("/compile", r.compileHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/rpn/evaluate", r.evaluatePostfixHandler)
}

// tokenizeHandler godoc
// @Summary Split an expression into tokens
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.TokenizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/tokenize [post]
func (r *CalcRouter) tokenizeHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TokenizeResponse{
		Expression: req.Expression,
		Tokens:     r.svc.Tokenize(req.Expression),
	})
}

// compileHandler godoc
// @Summary Convert an infix expression to postfix
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.CompileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/compile [post]
func (r *CalcRouter) compileHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	postfix, err := r.svc.Compile(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CompileResponse{
		Expression: req.Expression,
		Postfix:    postfix,
	})
}

// evaluateHandler godoc
// @Summary Evaluate an infix expression
// @Description The calculation is stored in history whether it succeeds or not.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	rec, err := r.svc.Calculate(c.Request().Context(), history.SourceAPI, req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		ID:         rec.ID.String(),
		Expression: rec.Expression,
		Postfix:    rec.Postfix,
		Result:     rec.Result,
	})
}

// evaluatePostfixHandler godoc
// @Summary Evaluate a postfix expression
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.PostfixRequest true "Postfix expression"
// @Success 200 {object} dto.EvaluatePostfixResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/rpn/evaluate [post]
func (r *CalcRouter) evaluatePostfixHandler(c echo.Context) error {
	var req dto.PostfixRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Postfix) == "" {
		return apperr.NewValidation("postfix is required")
	}

	result, err := r.svc.EvaluatePostfix(req.Postfix)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluatePostfixResponse{
		Postfix: req.Postfix,
		Result:  result,
	})
}

func bindExpression(c echo.Context) (*dto.ExpressionRequest, error) {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return nil, apperr.NewValidation("expression is required")
	}
	return &req, nil
}
