package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-home-io/panel/common"
	"github.com/gobwas/glob"
	"github.com/gorilla/websocket"
)

// Opens websocket to the panel.
func (p *panelSuite) dial(origin string) *websocket.Conn {
	header := http.Header{}
	if "" != origin {
		header.Set("Origin", origin)
	}

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(p.ts.URL, "http")+"/ws", header)
	p.Require().NoError(err)
	return ws
}

// Reads next view message, skipping update types which are not expected.
func (p *panelSuite) readView(ws *websocket.Conn, expected common.ViewMessageType) *common.MsgViewUpdate {
	deadline := time.Now().Add(waitFor)
	for time.Now().Before(deadline) {
		p.Require().NoError(ws.SetReadDeadline(deadline))
		msg := &common.MsgViewUpdate{}
		p.Require().NoError(ws.ReadJSON(msg))
		if msg.Type == expected {
			return msg
		}
	}

	p.Require().Fail("message is not received", string(expected))
	return nil
}

// Tests snapshot on connect.
func (p *panelSuite) TestWSSnapshot() {
	ws := p.dial("")
	defer ws.Close() // nolint: errcheck

	msg := p.readView(ws, common.ViewSnapshot)
	p.Require().NotNil(msg.View)
	p.True(msg.View.Built)
	p.Equal(4, len(msg.View.Controls))
	p.True(msg.View.Controls[2].Checked)

	p.Eventually(func() bool {
		return 1 == p.srv.sessions.Count()
	}, waitFor, tick)
}

// Tests keep-alive.
func (p *panelSuite) TestWSPing() {
	ws := p.dial("")
	defer ws.Close() // nolint: errcheck
	p.readView(ws, common.ViewSnapshot)

	p.Require().NoError(ws.WriteMessage(websocket.TextMessage, []byte("ping")))
	p.Require().NoError(ws.SetReadDeadline(time.Now().Add(waitFor)))
	for {
		_, data, err := ws.ReadMessage()
		p.Require().NoError(err)
		if "pong" == string(data) {
			break
		}
	}
}

// Tests browser toggle is seen by other browsers and the device.
func (p *panelSuite) TestWSToggle() {
	ws1 := p.dial("")
	defer ws1.Close() // nolint: errcheck
	ws2 := p.dial("")
	defer ws2.Close() // nolint: errcheck

	p.readView(ws1, common.ViewSnapshot)
	p.readView(ws2, common.ViewSnapshot)

	p.Require().NoError(ws1.WriteJSON(&wsCmd{Cmd: wsCmdToggle, Index: 0, State: true}))

	msg := p.readView(ws2, common.ViewUpdate)
	p.Equal(0, msg.Index)
	p.True(msg.State)

	p.Eventually(func() bool {
		return p.device.States()[0]
	}, waitFor, tick)
}

// Tests offline and online messages.
func (p *panelSuite) TestWSConnectivity() {
	ws := p.dial("")
	defer ws.Close() // nolint: errcheck
	p.readView(ws, common.ViewSnapshot)

	p.device.SetFailing(true)
	msg := p.readView(ws, common.ViewOffline)
	p.Equal(common.NoticeText, msg.Notice.Text)
	p.Equal(common.DisabledFilter, msg.Style.Filter)

	p.device.SetFailing(false)
	p.Require().NoError(ws.WriteJSON(&wsCmd{Cmd: wsCmdRetry}))
	msg = p.readView(ws, common.ViewOnline)
	p.Equal(common.EnabledFilter, msg.Style.Filter)
}

// Tests session removal.
func (p *panelSuite) TestWSDisconnect() {
	ws := p.dial("")
	p.readView(ws, common.ViewSnapshot)
	ws.Close() // nolint: errcheck, gosec

	p.Eventually(func() bool {
		return 0 == p.srv.sessions.Count()
	}, waitFor, tick)
}

// Tests rejected origin.
func (p *panelSuite) TestWSForeignOrigin() {
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(p.ts.URL, "http")+"/ws",
		http.Header{"Origin": {"http://evil.example.com"}})
	p.Error(err)
	p.Require().NotNil(resp)
	p.Equal(http.StatusForbidden, resp.StatusCode)
}

// Tests origin validation.
func (p *panelSuite) TestCheckOrigin() {
	data := []struct {
		origins  []string
		origin   string
		host     string
		expected bool
	}{
		{origin: "", host: "panel.local", expected: true},
		{origin: "http://panel.local", host: "panel.local", expected: true},
		{origin: "http://other.local", host: "panel.local", expected: false},
		{origins: []string{"http://*.home"}, origin: "http://kitchen.home", host: "panel.local", expected: true},
		{origins: []string{"http://*.home"}, origin: "http://panel.local", host: "panel.local", expected: false},
	}

	for _, v := range data {
		p.srv.origins = make([]glob.Glob, 0)
		for _, o := range v.origins {
			p.srv.origins = append(p.srv.origins, glob.MustCompile(o))
		}

		req := httptest.NewRequest(http.MethodGet, "http://"+v.host+"/ws", nil)
		if "" != v.origin {
			req.Header.Set("Origin", v.origin)
		}

		p.Equal(v.expected, p.srv.checkOrigin(req), v.origin)
	}
}
