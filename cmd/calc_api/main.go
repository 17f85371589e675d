// Package main RPN Calculator API
// @title RPN Calculator API
// @version 1.0
// @description Compiles infix arithmetic to postfix (RPN), evaluates it and keeps a history of calculations
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@rpncalc.dev
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/rpn-calc/docs"
	"github.com/DjordjeVuckovic/rpn-calc/internal/api/server"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history/factory"
	"github.com/DjordjeVuckovic/rpn-calc/internal/router"
	"github.com/DjordjeVuckovic/rpn-calc/internal/rpn"
	"github.com/DjordjeVuckovic/rpn-calc/internal/service"
	"github.com/DjordjeVuckovic/rpn-calc/internal/session"
	pkgserver "github.com/DjordjeVuckovic/rpn-calc/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	store, err := factory.NewStore(s.Context(), cfg.StoreConfig)
	if err != nil {
		slog.Error("Failed to create history store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	s.SetHealthChecker(pkgserver.AllHealthy{store})

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "RPN Calculator API is running")
	})

	engine := rpn.NewEngine()
	svc := service.NewCalculator(engine, store)

	stream := session.NewStreamPublisher()
	manager := session.NewManager(
		calculator.NewReducer(engine),
		session.WithPublisher(stream),
		session.WithResultHook(svc.RecordSession),
	)

	router.NewCalcRouter(s.Echo, svc).Bind()
	router.NewHistoryRouter(s.Echo, store).Bind()
	router.NewSessionRouter(s.Echo, manager, router.WithStream(stream)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		stream.Shutdown()
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
