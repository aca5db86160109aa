// internal/app/app.go

package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aircond/api"
	"aircond/internal/ac"
	"aircond/internal/config"
	"aircond/internal/db"
	"aircond/internal/dispatcher"
	"aircond/internal/display"
	"aircond/internal/events"
	"aircond/internal/handlers"
	"aircond/internal/logger"
	"aircond/internal/monitor"
	"aircond/internal/sensor"

	"github.com/zoobzio/clockz"
)

type App struct {
	cfg        *config.Config
	eventBus   *events.EventBus
	controller *ac.Controller
	dispatcher *dispatcher.Dispatcher
	recorder   *db.Recorder
	console    *display.Console
	monitor    *monitor.Monitor
	server     *http.Server
}

func NewApp() *App {
	return &App{}
}

func (a *App) Initialize() error {
	a.cfg = config.Load()
	logger.SetLevel(logger.ParseLevel(a.cfg.LogLevel))

	if err := db.Init_DB(a.cfg.DBPath); err != nil {
		return fmt.Errorf("初始化数据库失败: %v", err)
	}

	a.eventBus = events.NewEventBus()

	// 设定值以首次传感器读数初始化，开机即处于收敛完成状态
	src := sensor.NewSimSource(a.cfg.BaseTemperature, a.cfg.BaseHumidity, time.Now().UnixNano())
	state := ac.NewApplianceState(src)

	a.controller = ac.NewController(state, a.eventBus, clockz.RealClock, ac.Config{
		TickDelay: a.cfg.TickDelay,
	})
	a.dispatcher = dispatcher.New(a.controller, a.eventBus, a.cfg.CommandQueue)

	detailRepo := db.NewDetailRepository(db.DB)
	a.recorder = db.NewRecorder(a.eventBus, detailRepo)
	a.recorder.Attach()

	a.console = display.NewConsole(a.eventBus)
	a.console.Attach()

	a.monitor = monitor.NewMonitor(a.eventBus, a.controller, a.cfg.MonitorInterval)

	// 设置路由
	acHandler := handlers.NewACHandler(a.controller, a.dispatcher, detailRepo)
	router := api.SetupRouter(acHandler)

	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.HTTPPort),
		Handler: router,
	}

	return nil
}

func (a *App) Start() error {
	a.dispatcher.Start()
	a.monitor.Start()

	a.eventBus.Publish(events.Event{
		Type:      events.EventSystemStartup,
		Timestamp: time.Now(),
		Snapshot:  a.controller.Snapshot(),
	})

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error: %v", err)
		}
	}()

	logger.Info("Server started on port %d", a.cfg.HTTPPort)
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	a.eventBus.Publish(events.Event{
		Type:      events.EventSystemShutdown,
		Timestamp: time.Now(),
		Snapshot:  a.controller.Snapshot(),
	})

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error: %v", err)
	}

	a.monitor.Stop()
	a.dispatcher.Stop()
	a.console.Detach()
	a.recorder.Detach()

	logger.Info("Application stopped gracefully")
	return nil
}
