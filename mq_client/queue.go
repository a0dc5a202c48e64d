package mq_client

import (
	"github.com/streadway/amqp"
)

var AMQPChannel *amqp.Channel
var Connection *amqp.Connection

func Connect() error {
	cn, err := CreateAMQP()
	if err != nil {
		return err
	}

	Connection = cn

	return nil
}

func GetChannel() *amqp.Channel {
	if AMQPChannel != nil {
		return AMQPChannel
	}

	channel, _ := Connection.Channel()
	AMQPChannel = channel

	return AMQPChannel
}

func Publish(eid string, queue Queue, payload []byte, routing_key string) error {
	exchangeName, exchangeKind := GetExchange(eid)

	if err := GetChannel().ExchangeDeclare(exchangeName, exchangeKind, queue.Durable, false, false, false, nil); err != nil {
		return err
	}

	return GetChannel().Publish(
		exchangeName,
		routing_key,
		false,
		false,
		amqp.Publishing{
			Headers:      amqp.Table{},
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Priority:     0,
		},
	)
}

func Enqueue(id string, payload []byte) error {
	eid := GetBindingExchangeId(id)
	routing_key := GetRoutingKey(id)
	queue := GetBindingQueue(id)

	return Publish(eid, queue, payload, routing_key)
}

// EnqueueEvent publishes a private event routed as kind.id.event, the shape
// the websocket gateway fans out to clients.
func EnqueueEvent(kind string, id string, event string, payload []byte) error {
	routing_key := kind + "." + id + "." + event

	GetChannel().ExchangeDeclare("refpay.events.ranger", "topic", false, false, false, false, nil)

	return GetChannel().Publish(
		"refpay.events.ranger",
		routing_key,
		false,
		false,
		amqp.Publishing{
			Headers:      amqp.Table{},
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Priority:     0,
		},
	)
}
