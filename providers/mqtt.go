package providers

// IMirrorProvider defines a renderer which mirrors outputs to an MQTT broker.
type IMirrorProvider interface {
	IRenderer
	Connect() error
	Close()
}
