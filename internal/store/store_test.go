package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/store"
	"github.com/fleetforge/migration-compass/internal/store/model"
)

func TestStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Suite")
}

var _ = Describe("store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	newInventory := func(name string) model.Inventory {
		return model.Inventory{
			ID:      uuid.New(),
			Name:    name,
			Servers: model.MakeJSONField(store.GenerateDefaultFleet()),
		}
	}

	newPlan := func(inventoryID uuid.UUID, expiresAt time.Time) model.Plan {
		return model.Plan{
			ID:          uuid.New(),
			InventoryID: inventoryID,
			StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Result:      model.MakeJSONField(api.MigrationPlan{}),
			ExpiresAt:   expiresAt,
		}
	}

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

	Context("inventory", func() {
		It("successfully creates and reads back an inventory", func() {
			created, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())

			inventory, err := s.Inventory().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(inventory.Name).To(Equal("prod-fleet"))
			Expect(inventory.Servers.Data).To(HaveLen(4))
			Expect(inventory.Servers.Data[0].Metrics.CPU.Cores).To(Equal(4))
		})

		It("rejects a duplicate name", func() {
			_, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())

			_, err = s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		It("returns ErrRecordNotFound for an unknown id", func() {
			_, err := s.Inventory().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("filters the list by name pattern", func() {
			_, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())
			_, err = s.Inventory().Create(context.TODO(), newInventory("staging-fleet"))
			Expect(err).To(BeNil())

			inventories, err := s.Inventory().List(context.TODO(), store.NewInventoryQueryFilter().ByNameLike("prod"), store.NewInventoryQueryOptions())
			Expect(err).To(BeNil())
			Expect(inventories).To(HaveLen(1))
			Expect(inventories[0].Name).To(Equal("prod-fleet"))
		})

		It("deletes an inventory and cascades to its plans", func() {
			inventory, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())
			_, err = s.Plan().Create(context.TODO(), newPlan(inventory.ID, time.Now().Add(time.Hour)))
			Expect(err).To(BeNil())

			Expect(s.Inventory().Delete(context.TODO(), inventory.ID)).To(Succeed())

			_, err = s.Inventory().Get(context.TODO(), inventory.ID)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
			total, err := s.Plan().Count(context.TODO())
			Expect(err).To(BeNil())
			Expect(total).To(BeZero())
		})
	})

	Context("plan", func() {
		It("successfully creates and reads back a plan", func() {
			inventory, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())

			created, err := s.Plan().Create(context.TODO(), newPlan(inventory.ID, time.Now().Add(time.Hour)))
			Expect(err).To(BeNil())

			plan, err := s.Plan().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(plan.InventoryID).To(Equal(inventory.ID))
		})

		It("filters the list by inventory id", func() {
			first, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())
			second, err := s.Inventory().Create(context.TODO(), newInventory("staging-fleet"))
			Expect(err).To(BeNil())

			_, err = s.Plan().Create(context.TODO(), newPlan(first.ID, time.Now().Add(time.Hour)))
			Expect(err).To(BeNil())
			_, err = s.Plan().Create(context.TODO(), newPlan(second.ID, time.Now().Add(time.Hour)))
			Expect(err).To(BeNil())

			plans, err := s.Plan().List(context.TODO(), store.NewPlanQueryFilter().ByInventoryID(first.ID), store.NewPlanQueryOptions())
			Expect(err).To(BeNil())
			Expect(plans).To(HaveLen(1))
			Expect(plans[0].InventoryID).To(Equal(first.ID))
		})

		It("sweeps only expired plans", func() {
			inventory, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())

			_, err = s.Plan().Create(context.TODO(), newPlan(inventory.ID, time.Now().Add(-time.Hour)))
			Expect(err).To(BeNil())
			_, err = s.Plan().Create(context.TODO(), newPlan(inventory.ID, time.Now().Add(time.Hour)))
			Expect(err).To(BeNil())

			deleted, err := s.Plan().DeleteExpired(context.TODO(), time.Now())
			Expect(err).To(BeNil())
			Expect(deleted).To(Equal(int64(1)))

			total, err := s.Plan().Count(context.TODO())
			Expect(err).To(BeNil())
			Expect(total).To(Equal(1))
		})
	})

	Context("seed", func() {
		It("creates the sample fleet and refreshes it on re-run", func() {
			Expect(s.Seed()).To(Succeed())
			Expect(s.Seed()).To(Succeed())

			inventories, err := s.Inventory().List(context.TODO(), store.NewInventoryQueryFilter().ByName("sample-fleet"), store.NewInventoryQueryOptions())
			Expect(err).To(BeNil())
			Expect(inventories).To(HaveLen(1))
		})
	})

	Context("statistics", func() {
		It("aggregates servers by type across inventories", func() {
			inventory, err := s.Inventory().Create(context.TODO(), newInventory("prod-fleet"))
			Expect(err).To(BeNil())
			_, err = s.Plan().Create(context.TODO(), newPlan(inventory.ID, time.Now().Add(time.Hour)))
			Expect(err).To(BeNil())

			stats, err := s.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.TotalInventories).To(Equal(1))
			Expect(stats.TotalPlans).To(Equal(1))
			Expect(stats.Servers.Total).To(Equal(4))
			Expect(stats.Servers.TotalByType).To(HaveKeyWithValue("web", 1))
		})
	})
})
