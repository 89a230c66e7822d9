package events

import (
	"context"
	"encoding/json"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("producer", Ordered, func() {
	Context("emit", func() {
		It("delivers buffered events to the writer", func() {
			w := newTestWriter()
			ep := NewEventProducer(w)

			err := ep.Emit(context.TODO(), InventoryMessageKind, InventoryEvent{
				InventoryID: "0194fdc2-fa2f-4cc0-81d3-ff12045b73c8",
				Name:        "prod-fleet",
				Servers:     4,
			})
			Expect(err).To(BeNil())
			Eventually(w.Len).Should(Equal(1))

			first := w.Message(0)
			Expect(first.Context.GetType()).To(Equal(InventoryMessageKind))
			Expect(first.Context.GetSource()).To(Equal(eventSource))

			var payload InventoryEvent
			Expect(json.Unmarshal(first.Data(), &payload)).To(Succeed())
			Expect(payload.Name).To(Equal("prod-fleet"))
			Expect(payload.Servers).To(Equal(4))

			err = ep.Emit(context.TODO(), PlanMessageKind, PlanEvent{TotalServers: 4})
			Expect(err).To(BeNil())
			Eventually(w.Len).Should(Equal(2))
			Expect(w.Message(1).Context.GetType()).To(Equal(PlanMessageKind))

			Expect(ep.Close()).To(Succeed())
		})

		It("rejects payloads that cannot be encoded", func() {
			w := newTestWriter()
			ep := NewEventProducer(w)

			err := ep.Emit(context.TODO(), PlanMessageKind, func() {})
			Expect(err).To(HaveOccurred())
			Expect(w.Len()).To(BeZero())

			Expect(ep.Close()).To(Succeed())
		})
	})
})

type testwriter struct {
	lock     sync.Mutex
	messages []cloudevents.Event
}

func newTestWriter() *testwriter {
	return &testwriter{}
}

func (t *testwriter) Write(_ context.Context, _ string, e cloudevents.Event) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.messages = append(t.messages, e)
	return nil
}

func (t *testwriter) Close(_ context.Context) error {
	return nil
}

func (t *testwriter) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.messages)
}

func (t *testwriter) Message(i int) cloudevents.Event {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.messages[i]
}
