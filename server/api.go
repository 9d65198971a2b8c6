package server

import (
	"net/http"
	"strconv"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/utils"
	"github.com/gorilla/mux"
)

// Performs quick check whether server is alive.
func (s *GoHomePanel) ping(writer http.ResponseWriter, _ *http.Request) {
	respondOk(writer)
}

// Responds with current view.
func (s *GoHomePanel) getView(writer http.ResponseWriter, _ *http.Request) {
	respond(writer, s.View.Snapshot())
}

// Sets a single output, same as a browser control does.
func (s *GoHomePanel) setOutput(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	rawIndex := vars[string(urlOutputIndex)]
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		respondOkError(writer, &ErrBadOutputIndex{Value: rawIndex})
		return
	}

	state, err := utils.ParseSwitchState(vars[string(urlOutputState)])
	if err != nil {
		respondOkError(writer, &ErrBadRequest{})
		return
	}

	err = s.View.Toggle(index, state)
	if err != nil {
		s.Logger.Debug("Output command is rejected", common.LogSystemToken, logSystem,
			common.LogOutputToken, rawIndex, common.LogErrorToken, err.Error())
	}

	respondOkError(writer, err)
}

// Requests re-connection to the device.
func (s *GoHomePanel) retry(writer http.ResponseWriter, _ *http.Request) {
	respondOkError(writer, s.View.Retry())
}
