package roadmap

import (
	"errors"
	"testing"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

func analyzedServer(id string, effort float64, strategy api.StrategyType, risk api.RiskLevel, level api.ComplexityLevel, deps ...string) AnalyzedServer {
	record := api.ServerRecord{ServerID: id}
	for _, d := range deps {
		record.Dependencies = append(record.Dependencies, api.Dependency{
			Name: d, Type: api.DependencyOther, Criticality: api.CriticalityMedium,
		})
	}
	return AnalyzedServer{
		Record:      record,
		Complexity:  api.ComplexityResult{Score: 5, Level: level},
		Strategy:    api.MigrationStrategy{Strategy: strategy, RiskLevel: risk},
		EffortHours: effort,
	}
}

func rehostServer(id string, effort float64, deps ...string) AnalyzedServer {
	return analyzedServer(id, effort, api.StrategyRehost, api.RiskLow, api.ComplexityLow, deps...)
}

func TestBuildGraph_ResolvesByServerName(t *testing.T) {
	t.Parallel()
	alpha := rehostServer("srv-1", 10)
	alpha.Record.ServerName = "alpha"
	dependent := rehostServer("srv-2", 5, "alpha")

	g, err := buildGraph([]AnalyzedServer{alpha, dependent})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(g.adj[0]) != 1 || g.adj[0][0] != 1 {
		t.Errorf("expected edge srv-1 -> srv-2, got adj %v", g.adj)
	}
}

func TestBuildGraph_IgnoresUnknownAndSelfReferences(t *testing.T) {
	t.Parallel()
	servers := []AnalyzedServer{
		rehostServer("srv-1", 10, "srv-1", "ldap-server"),
		rehostServer("srv-2", 5),
	}

	g, err := buildGraph(servers)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	for i, targets := range g.adj {
		if len(targets) != 0 {
			t.Errorf("expected no edges, got %v from node %d", targets, i)
		}
	}
}

func TestBuildGraph_CollapsesDuplicateEdges(t *testing.T) {
	t.Parallel()
	dependent := rehostServer("srv-2", 5, "srv-1", "srv-1")
	g, err := buildGraph([]AnalyzedServer{rehostServer("srv-1", 10), dependent})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(g.adj[0]) != 1 {
		t.Errorf("expected a single collapsed edge, got %v", g.adj[0])
	}
}

func TestBuildGraph_TwoNodeCycle(t *testing.T) {
	t.Parallel()
	servers := []AnalyzedServer{
		rehostServer("A", 1, "B"),
		rehostServer("B", 1, "A"),
	}

	_, err := buildGraph(servers)
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	var cErr *CyclicDependencyError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected CyclicDependencyError, got %T", err)
	}
	if len(cErr.Cycle) != 2 {
		t.Errorf("expected 2 cycle members, got %v", cErr.Cycle)
	}
}

func TestBuildGraph_ThreeNodeCycleNamesMembersInOrder(t *testing.T) {
	t.Parallel()
	// A depends on C, B on A, C on B
	servers := []AnalyzedServer{
		rehostServer("A", 1, "C"),
		rehostServer("B", 1, "A"),
		rehostServer("C", 1, "B"),
	}

	_, err := buildGraph(servers)
	var cErr *CyclicDependencyError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected CyclicDependencyError, got %v", err)
	}

	want := []string{"A", "B", "C"}
	if len(cErr.Cycle) != len(want) {
		t.Fatalf("expected cycle %v, got %v", want, cErr.Cycle)
	}
	for i := range want {
		if cErr.Cycle[i] != want[i] {
			t.Fatalf("expected cycle %v, got %v", want, cErr.Cycle)
		}
	}
	if cErr.Error() != "cyclic dependency detected: A -> B -> C" {
		t.Errorf("unexpected message %q", cErr.Error())
	}
}

func TestTopoOrder_RespectsEdgesAndInsertionOrder(t *testing.T) {
	t.Parallel()
	// web(0) needs db(2) and cache(3); app(1) needs cache(3)
	servers := []AnalyzedServer{
		rehostServer("web", 1, "db", "cache"),
		rehostServer("app", 1, "cache"),
		rehostServer("db", 1),
		rehostServer("cache", 1),
	}

	g, err := buildGraph(servers)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	order := g.topoOrder()
	want := []int{2, 3, 0, 1} // db, cache, web, app
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}
