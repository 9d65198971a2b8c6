// Package server contains go-home panel server.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/systems/device"
	"github.com/go-home-io/panel/systems/fanout"
	"github.com/go-home-io/panel/systems/loop"
	"github.com/go-home-io/panel/systems/mqtt"
	"github.com/go-home-io/panel/systems/panel"
	"github.com/go-home-io/panel/systems/ui"
	"github.com/gobwas/glob"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/orcaman/concurrent-map/v2"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// GoHomePanel describes panel server.
type GoHomePanel struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider
	FanOut   providers.IFanOutProvider
	View     providers.IViewProvider
	Panel    providers.IPanelProvider
	Mirror   providers.IMirrorProvider

	scheduler  providers.IScheduler
	sessions   cmap.ConcurrentMap[string, *wsSession]
	origins    []glob.Glob
	wsSettings websocket.Upgrader
	cancel     context.CancelFunc
}

// NewServer constructs a new panel server.
func NewServer(settings providers.ISettingsProvider) (*GoHomePanel, error) {
	var mirror providers.IMirrorProvider
	if settings.MQTTSettings().Enabled {
		mirror = mqtt.NewMirror(&mqtt.ConstructMirror{
			Logger:   settings.SystemLogger(),
			Settings: settings.MQTTSettings(),
		})

		if err := mirror.Connect(); err != nil {
			return nil, err
		}
	}

	return newServer(settings, mirror)
}

// Wires panel components.
func newServer(settings providers.ISettingsProvider, mirror providers.IMirrorProvider) (*GoHomePanel, error) {
	client, err := device.NewClient(&device.ConstructClient{
		Logger: settings.SystemLogger(),
		URL:    settings.DeviceSettings().URL,
	})

	if err != nil {
		return nil, err
	}

	s := &GoHomePanel{
		Settings:  settings,
		Logger:    settings.SystemLogger(),
		FanOut:    fanout.NewFanOut(),
		Mirror:    mirror,
		scheduler: loop.NewLoop(settings.SystemLogger()),
		sessions:  cmap.New[*wsSession](),
		origins:   make([]glob.Glob, 0),
	}

	for _, v := range settings.ServerSettings().Origins {
		g, err := glob.Compile(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compile origin "+v)
		}

		s.origins = append(s.origins, g)
	}

	s.wsSettings = websocket.Upgrader{
		CheckOrigin: s.checkOrigin,
	}

	s.View = ui.NewView(&ui.ConstructView{
		Logger: s.Logger,
		FanOut: s.FanOut,
	})

	renderers := panel.Renderers{s.View}
	if nil != mirror {
		renderers = append(renderers, mirror)
	}

	s.Panel = panel.NewPanel(&panel.ConstructPanel{
		Logger:       s.Logger,
		Client:       client,
		Renderer:     renderers,
		Scheduler:    s.scheduler,
		PollInterval: settings.DeviceSettings().PollInterval,
	})

	return s, nil
}

// Start launches panel server.
func (s *GoHomePanel) Start() {
	s.run()

	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", s.Settings.ServerSettings().Port), s.handler())
		if err != nil {
			s.Logger.Fatal("Failed to start server", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", s.Settings.ServerSettings().Port),
		common.LogSystemToken, logSystem)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	for range c {
		s.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
		s.stop()
		os.Exit(0)
	}
}

// Starts synchronization with the device.
func (s *GoHomePanel) run() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.scheduler.Start(ctx)
	s.Panel.Start(ctx)

	_, err := s.Settings.Cron().AddFunc(s.Settings.ServerSettings().StatusReport, s.statusReport)
	if err != nil {
		s.Logger.Error("Failed to schedule status report", err, common.LogSystemToken, logSystem)
	}
}

// Stops synchronization with the device.
func (s *GoHomePanel) stop() {
	if nil != s.cancel {
		s.cancel()
	}

	if nil != s.Mirror {
		s.Mirror.Close()
	}

	s.Logger.Flush()
}

// Returns root HTTP handler.
func (s *GoHomePanel) handler() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(&recoveryLogger{s: s}))(router)
}

// All API registration.
func (s *GoHomePanel) registerAPI(router *mux.Router) {
	router.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)

	publicRouter := router.PathPrefix(routePublic).Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/view", s.getView).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/output/{%s:[0-9]+}/{%s:on|off}", urlOutputIndex, urlOutputState),
		s.setOutput).Methods(http.MethodPost)
	apiRouter.HandleFunc("/retry", s.retry).Methods(http.MethodPost)
	apiRouter.Use(s.logMiddleware)
	apiRouter.Use(handlers.CompressHandler)

	static, err := fs.Sub(assets, assetsDir)
	if err != nil {
		s.Logger.Fatal("Failed to load page assets", err, common.LogSystemToken, logSystem)
		return
	}

	router.PathPrefix("/").Handler(handlers.CompressHandler(http.FileServer(http.FS(static)))).
		Methods(http.MethodGet)
}

// Logs periodic status.
func (s *GoHomePanel) statusReport() {
	view := s.View.Snapshot()
	connectivity := "online"
	if nil != view.Notice {
		connectivity = "offline"
	}

	on := 0
	for _, v := range view.Controls {
		if v.Checked {
			on++
		}
	}

	s.Logger.Info("Panel status", common.LogSystemToken, logSystem,
		common.LogConnectivityToken, connectivity,
		"outputs", strconv.Itoa(len(view.Controls)),
		"on", strconv.Itoa(on),
		"sessions", strconv.Itoa(s.sessions.Count()))
}
