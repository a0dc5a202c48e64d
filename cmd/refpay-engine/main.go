package main

import (
	"fmt"
	"os"
	"time"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/mq_client"
	"github.com/refpay/refpay/workers/engines"
)

func CreateWorker(id string) engines.Worker {
	switch id {
	case "deposit_executor":
		return engines.NewDepositExecutorWorker()
	default:
		return nil
	}
}

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	Channel := mq_client.GetChannel()

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start refpay-engine: " + id)
		worker := CreateWorker(id)

		if worker == nil {
			config.Logger.Errorf("Unknown worker: %s", id)
			return
		}

		prefetch := mq_client.GetPrefetchCount(id)
		if prefetch > 0 {
			Channel.Qos(prefetch, 0, false)
		}

		binding_queue := mq_client.GetBindingQueue(id)
		binding_exchange_id := mq_client.GetBindingExchangeId(id)
		exchange_name, exchange_kind := mq_client.GetExchange(binding_exchange_id)
		routing_key := mq_client.GetRoutingKey(id)

		if err := Channel.ExchangeDeclare(exchange_name, exchange_kind, binding_queue.Durable, false, false, false, nil); err != nil {
			config.Logger.Errorf("Exchange Declare: %v", err)
			return
		}
		if _, err := Channel.QueueDeclare(binding_queue.Name, binding_queue.Durable, false, false, false, nil); err != nil {
			config.Logger.Errorf("Queue Declare: %v", err)
			return
		}
		Channel.QueueBind(binding_queue.Name, routing_key, exchange_name, false, nil)

		sub, err := config.Nats.QueueSubscribeSync(id, binding_queue.Name)
		if err != nil {
			config.Logger.Errorf("Subscribe: %v", err)
			return
		}

		for {
			m, err := sub.NextMsg(1 * time.Second)
			if err != nil {
				continue
			}

			if err := worker.Process(m.Data); err == nil {
				m.Ack()
			} else {
				config.Logger.Errorf("Worker error: %v", err.Error())
			}
		}
	}
}
