package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/systems/ui"
	"github.com/pkg/errors"
)

// Error envelope.
type errorResponse struct {
	Status  string `json:"status"`
	Problem string `json:"problem"`
}

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{ "status": "OK" }`) // nolint: errcheck, gosec
}

// Generic API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, http.StatusInternalServerError, err.Error())
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(d) // nolint: errcheck, gosec
}

// Validates whether error is not null and responds different status
// depending on it.
func respondOkError(writer http.ResponseWriter, err error) {
	if err != nil {
		respondError(writer, errorStatus(err), err.Error())
	} else {
		respondOk(writer)
	}
}

// Error API response.
func respondError(writer http.ResponseWriter, status int, problem string) {
	d, _ := json.Marshal(&errorResponse{Status: "ERROR", Problem: problem}) // nolint: gosec
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write(d) // nolint: errcheck, gosec
}

// Maps interaction errors to HTTP status.
func errorStatus(err error) int {
	switch errors.Cause(err).(type) {
	case *ErrBadRequest, *ErrBadOutputIndex:
		return http.StatusBadRequest
	case *ui.ErrUnknownOutput:
		return http.StatusNotFound
	case *ui.ErrNotReady, *ui.ErrDisabled, *ui.ErrNotOffline:
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// Logger middleware for the API.
func (s *GoHomePanel) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogSystemToken, logSystem, common.LogURLToken, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

// Adapts system logger to the recovery handler.
type recoveryLogger struct {
	s *GoHomePanel
}

// Println logs recovered panic.
func (l *recoveryLogger) Println(v ...interface{}) {
	l.s.Logger.Error("Recovered from panic", errors.New(fmt.Sprint(v...)),
		common.LogSystemToken, logSystem)
}
