package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogOutputToken describes output index log entry.
	LogOutputToken = "output"
	// LogStateToken describes output state log entry.
	LogStateToken = "state"
	// LogCycleToken describes poll cycle log entry.
	LogCycleToken = "cycle"
	// LogConnectivityToken describes connectivity state log entry.
	LogConnectivityToken = "connectivity"
	// LogSessionToken describes UI session log entry.
	LogSessionToken = "session"
	// LogTopicToken describes MQTT topic log entry.
	LogTopicToken = "topic"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
	// LogOriginToken describes websocket origin log entry.
	LogOriginToken = "origin"
)

const (
	// LogNodeToken describes node log entry.
	LogNodeToken = "node"
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogNameToken describes name log entry.
	LogNameToken = "name"
)
