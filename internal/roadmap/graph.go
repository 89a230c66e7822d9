package roadmap

import (
	"fmt"
	"sort"
	"strings"
)

// CyclicDependencyError reports a dependency loop that makes the fleet
// unschedulable. Cycle holds the member serverIds in order: each entry
// depends on the previous one and the first depends on the last.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency detected: %s", strings.Join(e.Cycle, " -> "))
}

// graph is the fleet dependency DAG. Nodes are indexes into servers
// (insertion order); adj holds prerequisite -> dependent edges and
// prereqs the inverse, both sorted by insertion index.
type graph struct {
	servers []AnalyzedServer
	adj     [][]int
	prereqs [][]int
}

// buildGraph resolves every dependency name against the fleet's
// serverIds and serverNames and returns the resulting DAG. Names are
// matched with serverIds taking precedence; unresolvable names and
// self-references add no edge; duplicate edges collapse. An error is
// returned only for dependency cycles.
func buildGraph(servers []AnalyzedServer) (*graph, error) {
	byName := make(map[string]int, len(servers)*2)
	for i, s := range servers {
		byName[s.Record.ServerID] = i
	}
	for i, s := range servers {
		if s.Record.ServerName == "" {
			continue
		}
		if _, taken := byName[s.Record.ServerName]; !taken {
			byName[s.Record.ServerName] = i
		}
	}

	edges := make([]map[int]struct{}, len(servers))
	for i, s := range servers {
		for _, dep := range s.Record.Dependencies {
			prereq, ok := byName[dep.Name]
			if !ok || prereq == i {
				continue
			}
			if edges[prereq] == nil {
				edges[prereq] = make(map[int]struct{})
			}
			edges[prereq][i] = struct{}{}
		}
	}

	g := &graph{
		servers: servers,
		adj:     make([][]int, len(servers)),
		prereqs: make([][]int, len(servers)),
	}
	for u, targets := range edges {
		for v := range targets {
			g.adj[u] = append(g.adj[u], v)
			g.prereqs[v] = append(g.prereqs[v], u)
		}
	}
	for i := range g.adj {
		sort.Ints(g.adj[i])
		sort.Ints(g.prereqs[i])
	}

	if err := g.detectCycle(); err != nil {
		return nil, err
	}
	return g, nil
}

const (
	white = iota
	grey
	black
)

// detectCycle runs a coloring DFS over the graph. On hitting a grey
// node it reconstructs the loop through the DFS parents and returns it
// as a CyclicDependencyError.
func (g *graph) detectCycle() error {
	color := make([]int, len(g.servers))
	parent := make([]int, len(g.servers))
	for i := range parent {
		parent[i] = -1
	}

	var visit func(v int) *CyclicDependencyError
	visit = func(v int) *CyclicDependencyError {
		color[v] = grey
		for _, w := range g.adj[v] {
			switch color[w] {
			case grey:
				members := make([]string, 0, len(g.servers))
				for u := v; u != w; u = parent[u] {
					members = append(members, g.servers[u].Record.ServerID)
				}
				members = append(members, g.servers[w].Record.ServerID)
				for l, r := 0, len(members)-1; l < r; l, r = l+1, r-1 {
					members[l], members[r] = members[r], members[l]
				}
				return &CyclicDependencyError{Cycle: members}
			case white:
				parent[w] = v
				if err := visit(w); err != nil {
					return err
				}
			}
		}
		color[v] = black
		return nil
	}

	for i := range g.servers {
		if color[i] == white {
			if err := visit(i); err != nil {
				return err
			}
		}
	}
	return nil
}

// topoOrder returns the node indexes in dependency order using Kahn's
// algorithm. Among ready nodes the lowest insertion index goes first,
// so the order is deterministic for a given fleet. Must only be called
// on a graph that passed cycle detection.
func (g *graph) topoOrder() []int {
	indegree := make([]int, len(g.servers))
	for _, targets := range g.adj {
		for _, v := range targets {
			indegree[v]++
		}
	}

	order := make([]int, 0, len(g.servers))
	done := make([]bool, len(g.servers))
	for len(order) < len(g.servers) {
		next := -1
		for i := range g.servers {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		done[next] = true
		order = append(order, next)
		for _, v := range g.adj[next] {
			indegree[v]--
		}
	}
	return order
}
