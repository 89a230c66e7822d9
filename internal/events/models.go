package events

// InventoryEvent is emitted when a fleet snapshot is stored.
type InventoryEvent struct {
	InventoryID string `json:"inventory_id"`
	Name        string `json:"name"`
	Servers     int    `json:"servers"`
}

// PlanEvent is emitted when a migration plan has been built and stored.
type PlanEvent struct {
	PlanID       string  `json:"plan_id"`
	InventoryID  string  `json:"inventory_id"`
	TotalServers int     `json:"total_servers"`
	TotalEffort  float64 `json:"total_effort"`
	Warnings     int     `json:"warnings"`
}
