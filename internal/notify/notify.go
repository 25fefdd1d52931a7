package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Event describes a hire lifecycle change published to interested
// listeners (driver apps, manager dashboards).
type Event struct {
	OrganizationID string    `json:"organization_id"`
	HireID         string    `json:"hire_id"`
	HireRef        string    `json:"hire_ref"`
	Status         string    `json:"status"`
	Actor          string    `json:"actor"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher delivers hire lifecycle events. Delivery is best effort:
// the lifecycle operation has already committed by the time an event is
// published, and a failed publish never fails the operation.
type Publisher interface {
	PublishHireEvent(event Event) error
}

// Topic returns the per-organization topic an event is published on.
func Topic(organizationID string) string {
	return fmt.Sprintf("hireflow/%s/hires", organizationID)
}

// MQTTPublisher publishes events over an MQTT broker.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().AddBroker(brokerURL).SetClientID(clientID)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout for %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &MQTTPublisher{client: client}, nil
}

// PublishHireEvent publishes one event as JSON at QoS 0.
func (p *MQTTPublisher) PublishHireEvent(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	token := p.client.Publish(Topic(event.OrganizationID), 0, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}

// NopPublisher drops all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishHireEvent(Event) error { return nil }
