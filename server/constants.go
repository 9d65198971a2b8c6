package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlOutputIndex describes output index URL param.
	urlOutputIndex muxKeys = "index"
	// urlOutputState describes requested state URL param.
	urlOutputState muxKeys = "state"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
	// routePublic describes unauthenticated routes prefix.
	routePublic = "/pub"
)

const (
	// wsCmdToggle describes browser toggle command.
	wsCmdToggle = "toggle"
	// wsCmdRetry describes browser retry command.
	wsCmdRetry = "retry"
	// wsPing describes keep-alive request.
	wsPing = "ping"
	// wsPong describes keep-alive response.
	wsPong = "pong"
)
