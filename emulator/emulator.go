// Package emulator contains in-memory relay device used for development and tests.
package emulator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/utils"
	"github.com/gorilla/mux"
)

const (
	// Default logger system.
	logSystem = "emulator"

	// Path of the output endpoint.
	routeOutput = "/output"

	// Form fields of the command request.
	formOutput = "output"
	formState  = "state"
)

// GoHomeDevice is an emulated relay board.
type GoHomeDevice struct {
	sync.Mutex

	Settings *providers.EmulatorSettings
	Logger   common.ILoggerProvider

	states  []bool
	failing bool
}

// NewDevice constructs an emulated device.
// Initial states longer than the number of outputs are truncated,
// missing ones are off.
func NewDevice(settings *providers.EmulatorSettings, logger common.ILoggerProvider) *GoHomeDevice {
	d := &GoHomeDevice{
		Settings: settings,
		Logger:   logger,
		states:   make([]bool, settings.Outputs),
	}

	copy(d.states, settings.Initial)
	return d
}

// Start launches emulated device.
func (d *GoHomeDevice) Start() {
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", d.Settings.Port), d.Router())
		if err != nil {
			d.Logger.Fatal("Failed to start device", err, common.LogSystemToken, logSystem)
		}
	}()

	d.Logger.Info(fmt.Sprintf("Started device emulator on port %d", d.Settings.Port),
		common.LogSystemToken, logSystem, "outputs", strconv.Itoa(len(d.states)))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	for range c {
		d.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
		os.Exit(0)
	}
}

// Router returns device's HTTP routes.
func (d *GoHomeDevice) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(routeOutput, d.getOutputs).Methods(http.MethodGet)
	router.HandleFunc(routeOutput, d.setOutput).Methods(http.MethodPost)
	return router
}

// SetFailing switches device into the mode where every request fails.
func (d *GoHomeDevice) SetFailing(failing bool) {
	d.Lock()
	defer d.Unlock()
	d.failing = failing
}

// Set changes output as if it was switched physically.
func (d *GoHomeDevice) Set(index int, state bool) {
	d.Lock()
	defer d.Unlock()

	if index < 0 || index >= len(d.states) {
		return
	}

	d.states[index] = state
}

// States returns copy of current outputs.
func (d *GoHomeDevice) States() []bool {
	d.Lock()
	defer d.Unlock()

	result := make([]bool, len(d.states))
	copy(result, d.states)
	return result
}

// Returns current outputs.
func (d *GoHomeDevice) getOutputs(writer http.ResponseWriter, request *http.Request) {
	d.Lock()
	defer d.Unlock()

	if d.failing {
		http.Error(writer, "Device failure", http.StatusInternalServerError)
		return
	}

	var data interface{} = d.states
	if d.Settings.Numeric {
		numeric := make([]int, len(d.states))
		for ii, v := range d.states {
			if v {
				numeric[ii] = 1
			}
		}

		data = numeric
	}

	body, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(body) // nolint: errcheck, gosec
}

// Sets a single output.
func (d *GoHomeDevice) setOutput(writer http.ResponseWriter, request *http.Request) {
	d.Lock()
	defer d.Unlock()

	if d.failing {
		http.Error(writer, "Device failure", http.StatusInternalServerError)
		return
	}

	if err := request.ParseForm(); err != nil {
		http.Error(writer, "Bad request", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(request.PostForm.Get(formOutput))
	if err != nil || index < 0 || index >= len(d.states) {
		d.Logger.Warn("Received command for unknown output", common.LogSystemToken, logSystem,
			common.LogOutputToken, request.PostForm.Get(formOutput))
		http.Error(writer, "Unknown output", http.StatusBadRequest)
		return
	}

	state, err := utils.ParseSwitchState(request.PostForm.Get(formState))
	if err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	d.states[index] = state
	d.Logger.Debug("Output is set", common.LogSystemToken, logSystem,
		common.LogOutputToken, strconv.Itoa(index), common.LogStateToken, utils.FormatSwitchState(state))
	writer.WriteHeader(http.StatusNoContent)
}
