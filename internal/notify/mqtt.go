package notify

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Publisher publishes a payload to an MQTT topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error
}

// MQTTDispatcher publishes alerts as JSON to a topic with QoS 1.
type MQTTDispatcher struct {
	pub   Publisher
	topic string
}

func NewMQTTDispatcher(pub Publisher, topic string) *MQTTDispatcher {
	return &MQTTDispatcher{pub: pub, topic: topic}
}

func (d *MQTTDispatcher) Dispatch(ctx context.Context, a Alert) error {
	payload, err := a.payload()
	if err != nil {
		return err
	}
	if err := d.pub.Publish(ctx, d.topic, 1, false, payload); err != nil {
		return fmt.Errorf("mqtt dispatch: %w", err)
	}
	return nil
}

// MQTTClient is a Publisher over a paho client.
type MQTTClient struct {
	client mqtt.Client
}

// NewMQTTClient connects to broker with a random client ID.
func NewMQTTClient(broker string) (*MQTTClient, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID("bpmonitor-" + uuid.NewString())
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTClient{client: client}, nil
}

// Publish waits for the broker to acknowledge the message or for ctx to end.
func (c *MQTTClient) Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}

func (c *MQTTClient) Disconnect() {
	c.client.Disconnect(250)
}
