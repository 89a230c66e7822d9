package service_test

import (
	"context"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/events"
	"github.com/fleetforge/migration-compass/internal/service"
	"github.com/fleetforge/migration-compass/internal/service/mappers"
	"github.com/fleetforge/migration-compass/internal/store"
)

func TestService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Service Suite")
}

type testwriter struct {
	Messages []cloudevents.Event
}

func newTestWriter() *testwriter {
	return &testwriter{Messages: []cloudevents.Event{}}
}

func (t *testwriter) Write(ctx context.Context, topic string, e cloudevents.Event) error {
	t.Messages = append(t.Messages, e)
	return nil
}

func (t *testwriter) Close(_ context.Context) error {
	return nil
}

var _ = Describe("inventory service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		cfg, err := config.NewDefault()
		Expect(err).To(BeNil())
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.Inventory().InitialMigration(context.TODO())).To(Succeed())
		Expect(s.Plan().InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM plans;")
		gormdb.Exec("DELETE FROM inventories;")
	})

	Context("create", func() {
		It("successfully creates an inventory and emits an event", func() {
			eventWriter := newTestWriter()
			srv := service.NewInventoryService(s, events.NewEventProducer(eventWriter))

			inventory, err := srv.CreateInventory(context.TODO(), mappers.InventoryCreateForm{
				Name:    "prod-fleet",
				Servers: store.GenerateDefaultFleet(),
			})
			Expect(err).To(BeNil())
			Expect(inventory.Name).To(Equal("prod-fleet"))
			Expect(inventory.Servers).To(HaveLen(4))

			Eventually(func() int {
				return len(eventWriter.Messages)
			}).Should(Equal(1))
			Expect(eventWriter.Messages[0].Type()).To(Equal(events.InventoryMessageKind))
		})

		It("rejects a duplicate name", func() {
			eventWriter := newTestWriter()
			srv := service.NewInventoryService(s, events.NewEventProducer(eventWriter))

			_, err := srv.CreateInventory(context.TODO(), mappers.InventoryCreateForm{
				Name:    "prod-fleet",
				Servers: store.GenerateDefaultFleet(),
			})
			Expect(err).To(BeNil())

			_, err = srv.CreateInventory(context.TODO(), mappers.InventoryCreateForm{
				Name:    "prod-fleet",
				Servers: store.GenerateDefaultFleet(),
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrDuplicateName{}))
		})
	})

	Context("list", func() {
		It("successfully lists inventories filtered by name", func() {
			eventWriter := newTestWriter()
			srv := service.NewInventoryService(s, events.NewEventProducer(eventWriter))

			for _, name := range []string{"prod-fleet", "staging-fleet"} {
				_, err := srv.CreateInventory(context.TODO(), mappers.InventoryCreateForm{
					Name:    name,
					Servers: store.GenerateDefaultFleet(),
				})
				Expect(err).To(BeNil())
			}

			inventories, err := srv.ListInventories(context.TODO(), store.NewInventoryQueryFilter())
			Expect(err).To(BeNil())
			Expect(inventories).To(HaveLen(2))

			inventories, err = srv.ListInventories(context.TODO(), store.NewInventoryQueryFilter().ByNameLike("staging"))
			Expect(err).To(BeNil())
			Expect(inventories).To(HaveLen(1))
			Expect(inventories[0].Name).To(Equal("staging-fleet"))
		})
	})

	Context("get", func() {
		It("returns not found for an unknown id", func() {
			eventWriter := newTestWriter()
			srv := service.NewInventoryService(s, events.NewEventProducer(eventWriter))

			_, err := srv.GetInventory(context.TODO(), uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("delete", func() {
		It("successfully deletes an inventory", func() {
			eventWriter := newTestWriter()
			srv := service.NewInventoryService(s, events.NewEventProducer(eventWriter))

			inventory, err := srv.CreateInventory(context.TODO(), mappers.InventoryCreateForm{
				Name:    "prod-fleet",
				Servers: store.GenerateDefaultFleet(),
			})
			Expect(err).To(BeNil())

			id, err := uuid.Parse(inventory.ID)
			Expect(err).To(BeNil())
			Expect(srv.DeleteInventory(context.TODO(), id)).To(Succeed())

			_, err = srv.GetInventory(context.TODO(), id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})
})
