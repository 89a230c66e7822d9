package model

type ServerStats struct {
	// Total is the total number of servers across all inventories
	Total int
	// Total number of servers by server type
	TotalByType map[string]int
}

type FleetStats struct {
	Servers          ServerStats
	TotalInventories int
	TotalPlans       int
}

func NewFleetStats(inventories []Inventory, totalPlans int) FleetStats {
	total := 0
	byType := make(map[string]int)

	for _, inv := range inventories {
		if inv.Servers == nil {
			continue
		}
		total += len(inv.Servers.Data)
		for _, srv := range inv.Servers.Data {
			byType[srv.ServerType]++
		}
	}

	return FleetStats{
		Servers: ServerStats{
			Total:       total,
			TotalByType: byType,
		},
		TotalInventories: len(inventories),
		TotalPlans:       totalPlans,
	}
}
