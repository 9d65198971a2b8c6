package common

// ViewMessageType describes the kind of change pushed to the browsers.
type ViewMessageType string

const (
	// ViewSnapshot carries the whole view, sent to a freshly connected browser.
	ViewSnapshot ViewMessageType = "snapshot"
	// ViewBuild carries the initial set of controls.
	ViewBuild ViewMessageType = "build"
	// ViewUpdate carries a single control state change.
	ViewUpdate ViewMessageType = "update"
	// ViewOffline attaches the notice and the disabled treatment.
	ViewOffline ViewMessageType = "offline"
	// ViewOnline removes the notice and the disabled treatment.
	ViewOnline ViewMessageType = "online"
)

const (
	// NoticeText is the text of the connectivity notice.
	NoticeText = "Connection lost"
	// NoticeRetryLabel is the label of the notice's retry control.
	NoticeRetryLabel = "Retry"
	// DisabledFilter is the container filter applied while offline.
	DisabledFilter = "blur(3px)"
	// DisabledPointerEvents is the container pointer-events value applied while offline.
	DisabledPointerEvents = "none"
	// EnabledFilter is the container filter applied while online.
	EnabledFilter = "none"
	// EnabledPointerEvents is the container pointer-events value applied while online.
	EnabledPointerEvents = "auto"
)

// ViewControl describes a single output toggle.
type ViewControl struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// ViewNotice describes the persistent connectivity notice.
type ViewNotice struct {
	Text  string `json:"text"`
	Retry string `json:"retry"`
}

// ViewStyle describes the output container treatment.
type ViewStyle struct {
	Filter        string `json:"filter"`
	PointerEvents string `json:"pointerEvents"`
}

// ViewState has the full state of the rendered page.
type ViewState struct {
	Built    bool           `json:"built"`
	Controls []*ViewControl `json:"controls"`
	Notice   *ViewNotice    `json:"notice,omitempty"`
	Style    *ViewStyle     `json:"style"`
}

// MsgViewUpdate contains a single view change distributed through the fan-out.
type MsgViewUpdate struct {
	Type     ViewMessageType `json:"type"`
	Index    int             `json:"index"`
	State    bool            `json:"state"`
	Controls []*ViewControl  `json:"controls,omitempty"`
	Notice   *ViewNotice     `json:"notice,omitempty"`
	Style    *ViewStyle      `json:"style,omitempty"`
	View     *ViewState      `json:"view,omitempty"`
}
