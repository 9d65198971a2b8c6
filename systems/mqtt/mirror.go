// Package mqtt contains MQTT mirror of the panel outputs.
package mqtt

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/utils"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "mqtt"

	// Status payloads.
	statusOnline  = "online"
	statusOffline = "offline"

	// Time given to the broker to acknowledge a publish.
	publishTimeout = 5 * time.Second
	// Time given to in-flight messages during disconnect, in ms.
	disconnectQuiesce = 250
)

// IClient defines the part of paho client used by the mirror.
type IClient interface {
	Connect() paho.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
	Disconnect(quiesce uint)
}

// ConstructMirror has data required for a new mirror.
type ConstructMirror struct {
	Logger   common.ILoggerProvider
	Settings *providers.MQTTSettings
	Client   IClient
}

// Mirror implementation.
// Renderer calls arrive from the panel loop, broker messages arrive
// from paho goroutines.
type mirror struct {
	sync.Mutex

	logger common.ILoggerProvider
	client IClient
	prefix string
	qos    byte

	outputs  int
	offline  bool
	onToggle func(int, bool)
	onRetry  func()
}

// NewMirror constructs a new MQTT mirror.
// Paho client is created from settings unless provided.
func NewMirror(ctor *ConstructMirror) providers.IMirrorProvider {
	m := &mirror{
		logger:  ctor.Logger,
		client:  ctor.Client,
		prefix:  ctor.Settings.Prefix,
		qos:     byte(ctor.Settings.QOS),
		outputs: -1,
	}

	if nil == m.client {
		opts := paho.NewClientOptions()
		opts.AddBroker(ctor.Settings.Broker)
		opts.SetClientID(ctor.Settings.ClientID)
		opts.SetAutoReconnect(true)
		opts.SetCleanSession(false)
		opts.SetWill(m.statusTopic(), statusOffline, m.qos, true)
		m.client = paho.NewClient(opts)
	}

	return m
}

// Connect connects to the broker and subscribes to the command topics.
func (m *mirror) Connect() error {
	token := m.client.Connect()
	if token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "failed to connect to mqtt broker")
	}

	for _, v := range []struct {
		topic   string
		handler paho.MessageHandler
	}{
		{topic: m.setTopic("+"), handler: m.onSetMessage},
		{topic: m.retryTopic(), handler: m.onRetryMessage},
	} {
		token = m.client.Subscribe(v.topic, m.qos, v.handler)
		if token.Wait() && token.Error() != nil {
			return errors.Wrap(token.Error(), "failed to subscribe to "+v.topic)
		}
	}

	m.logger.Info("Connected to mqtt broker", common.LogSystemToken, logSystem,
		common.LogTopicToken, m.prefix)
	return nil
}

// Close disconnects from the broker.
func (m *mirror) Close() {
	m.client.Disconnect(disconnectQuiesce)
}

// Build publishes every output.
func (m *mirror) Build(states []bool, onToggle func(int, bool)) {
	m.Lock()
	defer m.Unlock()

	m.outputs = len(states)
	m.onToggle = onToggle
	for ii, s := range states {
		m.publish(m.outputTopic(ii), utils.FormatSwitchState(s))
	}
}

// Update publishes a single output.
func (m *mirror) Update(index int, state bool) {
	m.Lock()
	defer m.Unlock()

	m.publish(m.outputTopic(index), utils.FormatSwitchState(state))
}

// ShowOffline publishes offline status.
func (m *mirror) ShowOffline(onRetry func()) {
	m.Lock()
	defer m.Unlock()

	m.offline = true
	m.onRetry = onRetry
	m.publish(m.statusTopic(), statusOffline)
}

// HideOffline publishes online status.
func (m *mirror) HideOffline() {
	m.Lock()
	defer m.Unlock()

	m.offline = false
	m.publish(m.statusTopic(), statusOnline)
}

// Processes set command.
// Output topic changes first, same as a browser control.
func (m *mirror) onSetMessage(_ paho.Client, msg paho.Message) {
	index, err := m.parseSetTopic(msg.Topic())
	if err != nil {
		m.logger.Warn("Received command for unknown topic", common.LogSystemToken, logSystem,
			common.LogTopicToken, msg.Topic())
		return
	}

	state, err := utils.ParseSwitchState(string(msg.Payload()))
	if err != nil {
		m.logger.Warn("Received unknown state", common.LogSystemToken, logSystem,
			common.LogTopicToken, msg.Topic(), common.LogStateToken, string(msg.Payload()))
		return
	}

	m.Lock()
	switch {
	case m.outputs < 0, m.offline:
		m.Unlock()
		m.logger.Warn("Ignoring command since outputs are not available", common.LogSystemToken, logSystem,
			common.LogOutputToken, strconv.Itoa(index))
		return
	case index >= m.outputs:
		m.Unlock()
		m.logger.Warn("Received command for unknown output", common.LogSystemToken, logSystem,
			common.LogOutputToken, strconv.Itoa(index))
		return
	}

	m.publish(m.outputTopic(index), utils.FormatSwitchState(state))
	cb := m.onToggle
	m.Unlock()

	cb(index, state)
}

// Processes retry command.
func (m *mirror) onRetryMessage(_ paho.Client, _ paho.Message) {
	m.Lock()
	if !m.offline {
		m.Unlock()
		m.logger.Debug("Ignoring retry since connection is fine", common.LogSystemToken, logSystem)
		return
	}

	cb := m.onRetry
	m.Unlock()

	cb()
}

// Extracts output index out of <prefix>/output/<n>/set.
func (m *mirror) parseSetTopic(topic string) (int, error) {
	parts := strings.Split(strings.TrimPrefix(topic, m.prefix+"/"), "/")
	if 3 != len(parts) || "output" != parts[0] || "set" != parts[2] {
		return -1, errors.New("unexpected topic")
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return -1, errors.New("unexpected output")
	}

	return index, nil
}

// Publishes retained message, broker acknowledgement is awaited in background.
func (m *mirror) publish(topic string, payload string) {
	token := m.client.Publish(topic, m.qos, true, payload)
	go func() {
		if !token.WaitTimeout(publishTimeout) {
			m.logger.Warn("Publish is not acknowledged", common.LogSystemToken, logSystem,
				common.LogTopicToken, topic)
			return
		}

		if err := token.Error(); err != nil {
			m.logger.Error("Failed to publish", err, common.LogSystemToken, logSystem,
				common.LogTopicToken, topic)
		}
	}()
}

func (m *mirror) outputTopic(index int) string {
	return fmt.Sprintf("%s/output/%d", m.prefix, index)
}

func (m *mirror) setTopic(index string) string {
	return fmt.Sprintf("%s/output/%s/set", m.prefix, index)
}

func (m *mirror) statusTopic() string {
	return m.prefix + "/status"
}

func (m *mirror) retryTopic() string {
	return m.prefix + "/retry"
}
