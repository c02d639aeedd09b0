package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"silzey-pos/internal/domain"
)

func testSale() domain.Sale {
	return domain.Sale{
		ID:       "sale-1",
		Customer: domain.CheckoutDraft{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-12-10", PhoneNumber: "555"},
		Lines: []domain.CartLine{
			{Product: domain.Product{ID: "Flower-1", Name: "Flower Product 1", Price: decimal.RequireFromString("20.00")}, Quantity: 2},
		},
		Total:         decimal.RequireFromString("40.00"),
		PointsEarned:  40,
		RewardsPoints: 40,
		FinalizedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

type stubPublisher struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (s *stubPublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	s.exchange = exchange
	s.key = key
	s.msg = msg
	return s.err
}

type stubRepo struct {
	created []domain.Sale
	err     error
}

func (s *stubRepo) Create(_ context.Context, sale domain.Sale) error {
	s.created = append(s.created, sale)
	return s.err
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Sale, error) {
	return nil, domain.ErrNotFound
}

func TestAMQPRecord(t *testing.T) {
	pub := &stubPublisher{}
	rec := &AMQP{ch: pub, queue: "pos.sales"}
	if err := rec.Record(context.Background(), testSale()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.exchange != "" || pub.key != "pos.sales" {
		t.Fatalf("unexpected routing %q %q", pub.exchange, pub.key)
	}
	if pub.msg.ContentType != "application/json" || pub.msg.MessageId != "sale-1" || pub.msg.DeliveryMode != amqp.Persistent {
		t.Fatalf("unexpected publishing %+v", pub.msg)
	}
	var msg saleMessage
	if err := json.Unmarshal(pub.msg.Body, &msg); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if msg.Total != "40.00" || msg.PointsEarned != 40 || len(msg.Lines) != 1 || msg.Lines[0].Subtotal != "40.00" {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestAMQPRecord_PublishError(t *testing.T) {
	rec := &AMQP{ch: &stubPublisher{err: errors.New("channel closed")}, queue: "q"}
	err := rec.Record(context.Background(), testSale())
	if err == nil || !strings.Contains(err.Error(), "channel closed") {
		t.Fatalf("expected publish error, got %v", err)
	}
}

func TestPostgresRecord(t *testing.T) {
	repo := &stubRepo{}
	if err := NewPostgres(repo).Record(context.Background(), testSale()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 || repo.created[0].ID != "sale-1" {
		t.Fatalf("sale not stored: %+v", repo.created)
	}

	repo.err = errors.New("insert failed")
	err := NewPostgres(repo).Record(context.Background(), testSale())
	if err == nil || !errors.Is(err, repo.err) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestLogRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLog(zerolog.New(&buf)).Record(context.Background(), testSale()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"sale_id":"sale-1"`, `"total":"40.00"`, `"points_earned":40`, `"message":"sale finalized"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestMultiRecord_JoinsErrors(t *testing.T) {
	first := errors.New("first")
	var calls int
	m := Multi{
		RecorderFunc(func(context.Context, domain.Sale) error { calls++; return first }),
		RecorderFunc(func(context.Context, domain.Sale) error { calls++; return nil }),
	}
	err := m.Record(context.Background(), testSale())
	if calls != 2 {
		t.Fatalf("expected every recorder called, got %d", calls)
	}
	if !errors.Is(err, first) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if err := (Multi{}).Record(context.Background(), testSale()); err != nil {
		t.Fatalf("empty multi should not fail: %v", err)
	}
}
