package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"silzey-pos/internal/domain"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQP publishes each sale as a JSON message on a durable queue.
type AMQP struct {
	ch    publisher
	queue string
}

// NewAMQP declares queue on ch and returns a publisher for it.
func NewAMQP(ch *amqp.Channel, queue string) (*AMQP, error) {
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &AMQP{ch: ch, queue: q.Name}, nil
}

type saleMessage struct {
	SaleID        string        `json:"saleId"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Lines         []lineMessage `json:"lines"`
	Total         string        `json:"total"`
	PointsEarned  int64         `json:"pointsEarned"`
	RewardsPoints int64         `json:"rewardsPoints"`
	FinalizedAt   time.Time     `json:"finalizedAt"`
}

type lineMessage struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

func newSaleMessage(sale domain.Sale) saleMessage {
	lines := make([]lineMessage, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		lines = append(lines, lineMessage{
			ProductID: line.ID,
			Name:      line.Name,
			UnitPrice: line.Price.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return saleMessage{
		SaleID:        sale.ID,
		FirstName:     sale.Customer.FirstName,
		LastName:      sale.Customer.LastName,
		Lines:         lines,
		Total:         sale.Total.StringFixed(2),
		PointsEarned:  sale.PointsEarned,
		RewardsPoints: sale.RewardsPoints,
		FinalizedAt:   sale.FinalizedAt,
	}
}

func (a *AMQP) Record(ctx context.Context, sale domain.Sale) error {
	body, err := json.Marshal(newSaleMessage(sale))
	if err != nil {
		return fmt.Errorf("marshal sale %s: %w", sale.ID, err)
	}
	if err := a.ch.PublishWithContext(ctx, "", a.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    sale.ID,
		Timestamp:    sale.FinalizedAt,
		Type:         "pos.sale.finalized",
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish sale %s: %w", sale.ID, err)
	}
	return nil
}
