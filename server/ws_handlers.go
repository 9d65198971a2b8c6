package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-home-io/panel/common"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Incoming browser command.
type wsCmd struct {
	Cmd   string `json:"cmd"`
	Index int    `json:"index"`
	State bool   `json:"state"`
}

// Connected browser.
type wsSession struct {
	sync.Mutex

	id   string
	conn *websocket.Conn
}

// Writes JSON message, websocket allows only one concurrent writer.
func (w *wsSession) writeJSON(v interface{}) error {
	w.Lock()
	defer w.Unlock()
	return w.conn.WriteJSON(v)
}

// Writes raw message.
func (w *wsSession) writeMessage(mt int, data []byte) error {
	w.Lock()
	defer w.Unlock()
	return w.conn.WriteMessage(mt, data)
}

// Handles WS upgrade request.
func (s *GoHomePanel) handleWS(writer http.ResponseWriter, request *http.Request) {
	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to establish a WS connection", err, common.LogSystemToken, logSystem,
			common.LogOriginToken, request.Header.Get("Origin"))
		return
	}

	session := &wsSession{
		id:   uuid.New().String(),
		conn: c,
	}

	s.sessions.Set(session.id, session)
	s.Logger.Debug("Browser connected", common.LogSystemToken, logSystem, common.LogSessionToken, session.id)
	go s.processWSConnection(session)
}

// Processes established WS connection.
// Subscription happens before the snapshot, so no change is lost in between.
//noinspection GoUnhandledErrorResult
func (s *GoHomePanel) processWSConnection(session *wsSession) {
	defer s.sessions.Remove(session.id)
	defer session.conn.Close() // nolint: errcheck

	stop := make(chan bool, 1)
	subID, updates := s.FanOut.SubscribeViewUpdates()
	defer s.FanOut.UnSubscribeViewUpdates(subID)

	go s.processIncomingWSMessages(session, stop)

	err := session.writeJSON(&common.MsgViewUpdate{
		Type: common.ViewSnapshot,
		View: s.View.Snapshot(),
	})

	if err != nil {
		return
	}

	for {
		select {
		case <-stop:
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}

			if err := session.writeJSON(msg); err != nil {
				s.Logger.Debug("Failed to send view update", common.LogSystemToken, logSystem,
					common.LogSessionToken, session.id, common.LogErrorToken, err.Error())
				session.conn.Close() // nolint: gosec, errcheck
			}
		}
	}
}

// Processes incoming WS messages.
//noinspection GoUnhandledErrorResult
func (s *GoHomePanel) processIncomingWSMessages(session *wsSession, stop chan bool) {
	defer session.conn.Close() // nolint: errcheck
	for {
		mt, message, err := session.conn.ReadMessage()
		if err != nil {
			s.Logger.Debug("Closing WS connection", common.LogSystemToken, logSystem,
				common.LogSessionToken, session.id)
			stop <- true
			return
		}

		// Ping request comes as a un-wrapped string
		if wsPing == string(message) {
			session.writeMessage(mt, []byte(wsPong)) // nolint: gosec, errcheck
			continue
		}

		cmd := &wsCmd{}
		err = json.Unmarshal(message, cmd)
		if err != nil {
			s.Logger.Warn("Failed to un-marshal WS command", common.LogSystemToken, logSystem,
				common.LogSessionToken, session.id)
			continue
		}

		if err := s.invokeWSCommand(cmd); err != nil {
			s.Logger.Debug("WS command is rejected", common.LogSystemToken, logSystem,
				common.LogSessionToken, session.id, common.LogErrorToken, err.Error())
			session.writeJSON(&errorResponse{Status: "ERROR", Problem: err.Error()}) // nolint: gosec, errcheck
		}
	}
}

// Routes browser command to the view.
func (s *GoHomePanel) invokeWSCommand(cmd *wsCmd) error {
	switch cmd.Cmd {
	case wsCmdToggle:
		s.Logger.Debug("Received toggle from browser", common.LogSystemToken, logSystem,
			common.LogOutputToken, strconv.Itoa(cmd.Index), common.LogStateToken, strconv.FormatBool(cmd.State))
		return s.View.Toggle(cmd.Index, cmd.State)
	case wsCmdRetry:
		return s.View.Retry()
	}

	return &ErrUnknownCommand{Name: cmd.Cmd}
}

// Validates browser origin.
// Without configured origins only the same host is allowed.
func (s *GoHomePanel) checkOrigin(request *http.Request) bool {
	origin := request.Header.Get("Origin")
	if "" == origin {
		return true
	}

	if 0 == len(s.origins) {
		u, err := url.Parse(origin)
		return err == nil && u.Host == request.Host
	}

	for _, v := range s.origins {
		if v.Match(origin) {
			return true
		}
	}

	s.Logger.Warn("Rejected WS origin", common.LogSystemToken, logSystem, common.LogOriginToken, origin)
	return false
}
