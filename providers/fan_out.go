package providers

import "github.com/go-home-io/panel/common"

// IFanOutProvider defines interface used for distributing
// view updates across all connected browsers.
type IFanOutProvider interface {
	SubscribeViewUpdates() (int64, chan *common.MsgViewUpdate)
	UnSubscribeViewUpdates(int64)
	ChannelInViewUpdates() chan *common.MsgViewUpdate
}
