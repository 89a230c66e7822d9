package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/internal/roadmap"
)

func testServer(id string, deps ...api.Dependency) api.ServerRecord {
	return api.ServerRecord{
		ServerID:   id,
		ServerName: id,
		ServerType: "web",
		Metrics: &api.ServerMetrics{
			CPU:     &api.CPUMetrics{Cores: 4, Utilization: 45},
			Memory:  &api.MemoryMetrics{Total: 16384, Used: 8192},
			Storage: &api.StorageMetrics{Total: 512000, Used: 204800},
			Network: &api.NetworkMetrics{Bandwidth: 1000},
		},
		Applications: []api.Application{
			{Name: "nginx", Version: "1.24.0", Type: "webserver", Status: "running"},
		},
		Dependencies: deps,
	}
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	cfg, err := config.NewDefault()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	return New(cfg)
}

func TestBuildPlansHealthyFleet(t *testing.T) {
	t.Parallel()

	p := newTestPlanner(t)
	servers := []api.ServerRecord{
		testServer("prod-db-01"),
		testServer("prod-web-01", api.Dependency{Name: "prod-db-01", Type: api.DependencyDatabase, Criticality: api.CriticalityCritical}),
		testServer("prod-web-02", api.Dependency{Name: "prod-db-01", Type: api.DependencyDatabase, Criticality: api.CriticalityHigh}),
	}

	startDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan, err := p.Build(context.Background(), servers, startDate)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := len(plan.Servers); got != 3 {
		t.Fatalf("analyzed servers = %d, want 3", got)
	}
	if len(plan.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", plan.Warnings)
	}
	if plan.ProjectSummary.TotalServers != 3 {
		t.Errorf("summary total servers = %d, want 3", plan.ProjectSummary.TotalServers)
	}
	if plan.ProjectSummary.TotalEffort <= 0 {
		t.Errorf("summary total effort = %f, want > 0", plan.ProjectSummary.TotalEffort)
	}
	if len(plan.Timeline) < 3 {
		t.Errorf("timeline has %d phases, want at least assessment, one wave and cutover", len(plan.Timeline))
	}
	if got := plan.Timeline[0].StartDate; got != "2026-03-02" {
		t.Errorf("first phase starts %s, want 2026-03-02", got)
	}

	// Analyses keep fleet order.
	for i, server := range servers {
		if plan.Servers[i].ServerID != server.ServerID {
			t.Errorf("servers[%d] = %s, want %s", i, plan.Servers[i].ServerID, server.ServerID)
		}
	}
}

func TestBuildIsolatesInvalidServers(t *testing.T) {
	t.Parallel()

	broken := testServer("prod-broken-01")
	broken.Metrics.CPU.Cores = 0

	p := newTestPlanner(t)
	plan, err := p.Build(context.Background(), []api.ServerRecord{
		testServer("prod-db-01"),
		broken,
	}, time.Now())
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := len(plan.Servers); got != 1 {
		t.Fatalf("analyzed servers = %d, want 1", got)
	}
	if got := len(plan.Warnings); got != 1 {
		t.Fatalf("warnings = %d, want 1", got)
	}
	if plan.Warnings[0].ServerID != "prod-broken-01" {
		t.Errorf("warning names %s, want prod-broken-01", plan.Warnings[0].ServerID)
	}
	if plan.ProjectSummary.TotalServers != 1 {
		t.Errorf("summary counts %d servers, want only the survivor", plan.ProjectSummary.TotalServers)
	}
}

func TestBuildFailsWhenNoServerSurvives(t *testing.T) {
	t.Parallel()

	broken := testServer("prod-broken-01")
	broken.Metrics = nil

	p := newTestPlanner(t)
	_, err := p.Build(context.Background(), []api.ServerRecord{broken}, time.Now())
	if err == nil {
		t.Fatal("Build() succeeded with no analyzable server")
	}

	var validationErr *api.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want *api.ValidationError", err)
	}
}

func TestBuildHonorsFractionalBookendDays(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewDefault()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	cfg.Policy.Effort.AssessmentBaseDays = 12.5
	cfg.Policy.Effort.CutoverBaseDays = 9.5

	p := New(cfg)
	startDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan, err := p.Build(context.Background(), []api.ServerRecord{testServer("prod-web-01")}, startDate)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := plan.Servers[0].Complexity.Level; got != api.ComplexityLow {
		t.Fatalf("complexity level = %s, want low", got)
	}

	// Half days round up: 12.5 assessment days become 13.
	first := plan.Timeline[0]
	if first.EndDate != "2026-03-15" {
		t.Errorf("assessment ends %s, want 2026-03-15", first.EndDate)
	}

	last := plan.Timeline[len(plan.Timeline)-1]
	if last.Duration != "10 days" {
		t.Errorf("cutover duration = %s, want 10 days", last.Duration)
	}
}

func TestBuildSurfacesDependencyCycles(t *testing.T) {
	t.Parallel()

	p := newTestPlanner(t)
	_, err := p.Build(context.Background(), []api.ServerRecord{
		testServer("prod-a", api.Dependency{Name: "prod-b", Type: api.DependencyOther, Criticality: api.CriticalityMedium}),
		testServer("prod-b", api.Dependency{Name: "prod-a", Type: api.DependencyOther, Criticality: api.CriticalityMedium}),
	}, time.Now())

	var cyclicErr *roadmap.CyclicDependencyError
	if !errors.As(err, &cyclicErr) {
		t.Fatalf("error = %v, want *roadmap.CyclicDependencyError", err)
	}
	if got := len(cyclicErr.Cycle); got != 2 {
		t.Errorf("cycle has %d members, want 2", got)
	}
}
