package roadmap

// criticalPath returns the serverIds on the longest cumulative-effort
// chain through the dependency DAG, computed by dynamic programming
// over the topological order. Only strict improvements move the best
// predecessor, so ties resolve to the earlier-inserted server.
func criticalPath(g *graph, order []int) []string {
	dist := make([]float64, len(g.servers))
	parent := make([]int, len(g.servers))
	for i := range parent {
		parent[i] = -1
	}

	for _, v := range order {
		best := 0.0
		bestParent := -1
		for _, u := range g.prereqs[v] {
			if dist[u] > best {
				best = dist[u]
				bestParent = u
			}
		}
		dist[v] = best + g.servers[v].EffortHours
		parent[v] = bestParent
	}

	end := 0
	for i := 1; i < len(dist); i++ {
		if dist[i] > dist[end] {
			end = i
		}
	}

	ids := make([]string, 0, len(g.servers))
	for v := end; v != -1; v = parent[v] {
		ids = append(ids, g.servers[v].Record.ServerID)
	}
	for l, r := 0, len(ids)-1; l < r; l, r = l+1, r-1 {
		ids[l], ids[r] = ids[r], ids[l]
	}
	return ids
}
