//go:build !release

package mocks

import (
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// FakeToken is a completed paho token.
type FakeToken struct {
	err error
}

// Wait returns immediately.
func (t *FakeToken) Wait() bool {
	return true
}

// WaitTimeout returns immediately.
func (t *FakeToken) WaitTimeout(time.Duration) bool {
	return true
}

// Done returns closed channel.
func (t *FakeToken) Done() <-chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}

// Error returns configured error.
func (t *FakeToken) Error() error {
	return t.err
}

// FakePublish describes a single published message.
type FakePublish struct {
	Topic    string
	Payload  string
	Retained bool
}

// FakeMQTTClient records publishes and subscriptions.
type FakeMQTTClient struct {
	sync.Mutex

	ConnectErr   error
	Connected    bool
	Disconnected bool
	Published    []FakePublish

	handlers map[string]paho.MessageHandler
}

// Connect returns configured result.
func (f *FakeMQTTClient) Connect() paho.Token {
	f.Lock()
	defer f.Unlock()
	f.Connected = nil == f.ConnectErr
	return &FakeToken{err: f.ConnectErr}
}

// Publish records message.
func (f *FakeMQTTClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	f.Lock()
	defer f.Unlock()
	f.Published = append(f.Published, FakePublish{Topic: topic, Payload: payload.(string), Retained: retained})
	return &FakeToken{}
}

// Subscribe records handler.
func (f *FakeMQTTClient) Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token {
	f.Lock()
	defer f.Unlock()
	f.handlers[topic] = callback
	return &FakeToken{}
}

// Disconnect marks client as disconnected.
func (f *FakeMQTTClient) Disconnect(uint) {
	f.Lock()
	defer f.Unlock()
	f.Disconnected = true
}

// Subscriptions returns subscribed filters.
func (f *FakeMQTTClient) Subscriptions() []string {
	f.Lock()
	defer f.Unlock()

	result := make([]string, 0, len(f.handlers))
	for k := range f.handlers {
		result = append(result, k)
	}

	return result
}

// PublishedCount returns number of not yet taken messages.
func (f *FakeMQTTClient) PublishedCount() int {
	f.Lock()
	defer f.Unlock()
	return len(f.Published)
}

// TakePublished returns and resets published messages.
func (f *FakeMQTTClient) TakePublished() []FakePublish {
	f.Lock()
	defer f.Unlock()

	result := f.Published
	f.Published = make([]FakePublish, 0)
	return result
}

// Deliver imitates incoming message.
func (f *FakeMQTTClient) Deliver(topic string, payload string) bool {
	f.Lock()
	var handler paho.MessageHandler
	for k, v := range f.handlers {
		if topicMatches(k, topic) {
			handler = v
			break
		}
	}
	f.Unlock()

	if nil == handler {
		return false
	}

	handler(nil, &fakeMessage{topic: topic, payload: []byte(payload)})
	return true
}

// Matches topic against filter with single-level wildcards.
func topicMatches(filter string, topic string) bool {
	fp := strings.Split(filter, "/")
	tp := strings.Split(topic, "/")
	if len(fp) != len(tp) {
		return false
	}

	for ii := range fp {
		if fp[ii] != "+" && fp[ii] != tp[ii] {
			return false
		}
	}

	return true
}

// FakeNewMQTTClient creates a new fake paho client.
func FakeNewMQTTClient() *FakeMQTTClient {
	return &FakeMQTTClient{
		Published: make([]FakePublish, 0),
		handlers:  make(map[string]paho.MessageHandler),
	}
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool {
	return false
}

func (m *fakeMessage) Qos() byte {
	return 0
}

func (m *fakeMessage) Retained() bool {
	return false
}

func (m *fakeMessage) Topic() string {
	return m.topic
}

func (m *fakeMessage) MessageID() uint16 {
	return 0
}

func (m *fakeMessage) Payload() []byte {
	return m.payload
}

func (m *fakeMessage) Ack() {
}
