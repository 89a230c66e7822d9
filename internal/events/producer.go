package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	InventoryMessageKind string = "fleetforge.compass.events.inventory"
	PlanMessageKind      string = "fleetforge.compass.events.plan"

	eventSource  string = "fleetforge.compass"
	defaultTopic string = "fleetforge.compass.events"

	deliverTimeout = 10 * time.Second
	closeTimeout   = 5 * time.Second
)

// Writer delivers assembled cloudevents to their destination (kafka or
// stdout, per config).
type Writer interface {
	Write(ctx context.Context, topic string, e cloudevents.Event) error
	Close(ctx context.Context) error
}

// EventProducer accepts domain events on the request path, buffers
// them, and drains the buffer to the Writer from a single goroutine.
// A slow broker delays delivery, never the caller.
type EventProducer struct {
	buffer *buffer
	wakeCh chan any
	doneCh chan any
	writer Writer
	topic  string
}

func NewEventProducer(w Writer, opts ...ProducerOptions) *EventProducer {
	ep := &EventProducer{
		buffer: newBuffer(),
		wakeCh: make(chan any),
		doneCh: make(chan any),
		writer: w,
		topic:  defaultTopic,
	}

	for _, o := range opts {
		o(ep)
	}

	go ep.run()
	return ep
}

// Emit encodes payload as JSON and queues it for delivery under the
// given kind. Only encoding failures are reported to the caller;
// delivery failures are logged by the drain loop.
func (ep *EventProducer) Emit(_ context.Context, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", kind, err)
	}

	wasEmpty := ep.buffer.Size() == 0
	if err := ep.buffer.PushBack(&message{Kind: kind, Data: data}); err != nil {
		return err
	}
	if wasEmpty {
		// wake the drain loop; it blocks while the buffer is empty
		ep.wakeCh <- struct{}{}
	}

	return nil
}

func (ep *EventProducer) Close() error {
	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(closeCtx)
	g.Go(func() error {
		ep.doneCh <- struct{}{}
		return ep.writer.Close(ctx)
	})
	if err := g.Wait(); err != nil {
		zap.S().Named("event_producer").Errorw("closed with error", "error", err)
		return err
	}

	zap.S().Named("event_producer").Info("event producer closed")

	return nil
}

func (ep *EventProducer) run() {
	for {
		select {
		case <-ep.doneCh:
			return
		default:
		}

		if ep.buffer.Size() == 0 {
			select {
			case <-ep.wakeCh:
			case <-ep.doneCh:
				return
			}
		}

		if msg := ep.buffer.Pop(); msg != nil {
			ep.deliver(msg)
		}
	}
}

func (ep *EventProducer) deliver(msg *message) {
	e := cloudevents.NewEvent()
	e.SetID(uuid.NewString())
	e.SetSource(eventSource)
	e.SetType(msg.Kind)
	_ = e.SetData(*cloudevents.StringOfApplicationJSON(), msg.Data)

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	if err := ep.writer.Write(ctx, ep.topic, e); err != nil {
		zap.S().Named("event_producer").Errorw("failed to deliver event", "error", err, "kind", msg.Kind)
	}
}
