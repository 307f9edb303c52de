package service

import (
	"context"
	"time"

	"github.com/streadway/amqp"

	"go-hongbao/config"
	"go-hongbao/internal/pkg/jsonutil"
	"go-hongbao/internal/repository/model"
)

const EnvelopeCreatedKey = "envelope.created"

// EnvelopeNotifier 红包发放成功通知, 在事务提交后调用
type EnvelopeNotifier interface {
	Notify(ctx context.Context, envelope *model.Envelope) error
}

// Publisher amqp.Channel 的发布接口
type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// EnvelopeCreatedEvent 红包发放事件消息体
type EnvelopeCreatedEvent struct {
	Reid        int                     `json:"reid"`
	Uid         int                     `json:"uid"`
	Gid         int                     `json:"gid"`
	Amount      int64                   `json:"amount"`
	BestLuckUid int                     `json:"best_luck_uid"`
	MaxMount    int64                   `json:"max_mount"`
	PickupUsers int                     `json:"pickup_users"`
	Details     []*model.EnvelopeDetail `json:"details"`
	CreatedAt   int64                   `json:"created_at"`
}

type AmqpEnvelopeNotifier struct {
	channel  Publisher
	exchange string
}

func NewAmqpEnvelopeNotifier(channel Publisher, conf *config.Config) *AmqpEnvelopeNotifier {
	return &AmqpEnvelopeNotifier{channel: channel, exchange: conf.RabbitMQ.ExchangeName}
}

// Notify 发布 envelope.created 消息
func (n *AmqpEnvelopeNotifier) Notify(_ context.Context, envelope *model.Envelope) error {
	now := time.Now()

	body, err := jsonutil.Marshal(&EnvelopeCreatedEvent{
		Reid:        envelope.Reid,
		Uid:         envelope.Uid,
		Gid:         envelope.Gid,
		Amount:      envelope.Amount,
		BestLuckUid: envelope.BestLuckUid,
		MaxMount:    envelope.MaxMount,
		PickupUsers: envelope.PickupUsers,
		Details:     envelope.Details,
		CreatedAt:   now.Unix(),
	})
	if err != nil {
		return err
	}

	return n.channel.Publish(n.exchange, EnvelopeCreatedKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	})
}
