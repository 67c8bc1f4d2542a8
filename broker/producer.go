package broker

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

var conn *nats.Conn

// InitProducer connects to NATS. Callers treat a failure as non-fatal; the
// API keeps serving and publishes become no-ops.
func InitProducer(url string) error {
	var err error
	conn, err = nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("Reconnected to NATS at %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return err
	}
	log.Printf("NATS producer connected to %s", url)
	return nil
}

// PublishEvent publishes a payload to the given subject. Fire-and-forget:
// failures are logged, never propagated to the request that triggered them.
func PublishEvent(subject string, payload interface{}) {
	if conn == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal event for subject %s: %v", subject, err)
		return
	}

	if err := conn.Publish(subject, data); err != nil {
		log.Printf("Failed to publish event to subject %s: %v", subject, err)
	}
}

func CloseProducer() {
	if conn != nil {
		if err := conn.Drain(); err != nil {
			log.Printf("Failed to drain NATS connection: %v", err)
		}
		conn = nil
	}
}
