package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/events"
	"github.com/fleetforge/migration-compass/internal/planner"
	"github.com/fleetforge/migration-compass/internal/roadmap"
	"github.com/fleetforge/migration-compass/internal/service"
	"github.com/fleetforge/migration-compass/internal/service/mappers"
	"github.com/fleetforge/migration-compass/internal/store"
)

var _ = Describe("plan service", Ordered, func() {
	var (
		s            store.Store
		gormdb       *gorm.DB
		fleetPlanner *planner.Planner
	)

	createInventory := func(name string, servers []api.ServerRecord) uuid.UUID {
		eventWriter := newTestWriter()
		srv := service.NewInventoryService(s, events.NewEventProducer(eventWriter))
		inventory, err := srv.CreateInventory(context.TODO(), mappers.InventoryCreateForm{Name: name, Servers: servers})
		Expect(err).To(BeNil())

		id, err := uuid.Parse(inventory.ID)
		Expect(err).To(BeNil())
		return id
	}

	BeforeAll(func() {
		cfg, err := config.NewDefault()
		Expect(err).To(BeNil())
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		fleetPlanner = planner.New(cfg)
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
		It("successfully builds and stores a plan", func() {
			inventoryID := createInventory("prod-fleet", store.GenerateDefaultFleet())

			eventWriter := newTestWriter()
			srv := service.NewPlanService(s, fleetPlanner, events.NewEventProducer(eventWriter), 30*24*time.Hour)

			plan, err := srv.CreatePlan(context.TODO(), mappers.PlanCreateForm{
				InventoryID: inventoryID,
				StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			})
			Expect(err).To(BeNil())
			Expect(plan.InventoryID).To(Equal(inventoryID.String()))
			Expect(plan.StartDate).To(Equal("2026-03-02"))
			Expect(plan.Result.ProjectSummary.TotalServers).To(Equal(4))
			Expect(plan.Result.Timeline).ToNot(BeEmpty())

			Eventually(func() int {
				return len(eventWriter.Messages)
			}).Should(Equal(1))
			Expect(eventWriter.Messages[0].Type()).To(Equal(events.PlanMessageKind))
		})

		It("fails when the inventory does not exist", func() {
			eventWriter := newTestWriter()
			srv := service.NewPlanService(s, fleetPlanner, events.NewEventProducer(eventWriter), 30*24*time.Hour)

			_, err := srv.CreatePlan(context.TODO(), mappers.PlanCreateForm{InventoryID: uuid.New()})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})

		It("surfaces a dependency cycle", func() {
			fleet := store.GenerateDefaultFleet()
			// prod-cache-01 has no dependencies in the sample fleet; close
			// the loop back to the web tier.
			fleet[3].Dependencies = []api.Dependency{
				{Name: "prod-web-01", Type: api.DependencyOther, Criticality: api.CriticalityLow},
			}
			inventoryID := createInventory("cyclic-fleet", fleet)

			eventWriter := newTestWriter()
			srv := service.NewPlanService(s, fleetPlanner, events.NewEventProducer(eventWriter), 30*24*time.Hour)

			_, err := srv.CreatePlan(context.TODO(), mappers.PlanCreateForm{InventoryID: inventoryID})
			Expect(err).To(BeAssignableToTypeOf(&roadmap.CyclicDependencyError{}))
			Expect(eventWriter.Messages).To(BeEmpty())
		})
	})

	Context("list", func() {
		It("successfully lists plans filtered by inventory", func() {
			firstID := createInventory("prod-fleet", store.GenerateDefaultFleet())
			secondID := createInventory("staging-fleet", store.GenerateDefaultFleet())

			eventWriter := newTestWriter()
			srv := service.NewPlanService(s, fleetPlanner, events.NewEventProducer(eventWriter), 30*24*time.Hour)

			_, err := srv.CreatePlan(context.TODO(), mappers.PlanCreateForm{InventoryID: firstID})
			Expect(err).To(BeNil())
			_, err = srv.CreatePlan(context.TODO(), mappers.PlanCreateForm{InventoryID: secondID})
			Expect(err).To(BeNil())

			plans, err := srv.ListPlans(context.TODO(), store.NewPlanQueryFilter())
			Expect(err).To(BeNil())
			Expect(plans).To(HaveLen(2))

			plans, err = srv.ListPlans(context.TODO(), store.NewPlanQueryFilter().ByInventoryID(firstID))
			Expect(err).To(BeNil())
			Expect(plans).To(HaveLen(1))
			Expect(plans[0].InventoryID).To(Equal(firstID.String()))
		})
	})

	Context("delete", func() {
		It("successfully deletes a plan", func() {
			inventoryID := createInventory("prod-fleet", store.GenerateDefaultFleet())

			eventWriter := newTestWriter()
			srv := service.NewPlanService(s, fleetPlanner, events.NewEventProducer(eventWriter), 30*24*time.Hour)

			plan, err := srv.CreatePlan(context.TODO(), mappers.PlanCreateForm{InventoryID: inventoryID})
			Expect(err).To(BeNil())

			planID, err := uuid.Parse(plan.ID)
			Expect(err).To(BeNil())
			Expect(srv.DeletePlan(context.TODO(), planID)).To(Succeed())

			_, err = srv.GetPlan(context.TODO(), planID)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})
})
