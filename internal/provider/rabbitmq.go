package provider

import (
	"fmt"

	"github.com/streadway/amqp"

	"go-hongbao/config"
)

// NewRabbitMQClient 连接 RabbitMQ 并声明红包事件交换机
func NewRabbitMQClient(conf *config.Config) (*amqp.Connection, *amqp.Channel, func(), error) {
	client, err := amqp.Dial(conf.RabbitMQ.Url())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	channel, err := client.Channel()
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(conf.RabbitMQ.ExchangeName, amqp.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return client, channel, func() {
		_ = channel.Close()
		_ = client.Close()
	}, nil
}
