package store

import (
	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

// GenerateDefaultFleet returns the sample fleet seeded into fresh
// deployments. The mix is chosen so every strategy shows up in the
// resulting plan: the cache rehosts, the app tier replatforms, and the
// database plus its web consumer land on refactor.
func GenerateDefaultFleet() []api.ServerRecord {
	return []api.ServerRecord{
		{
			ServerID:   "prod-web-01",
			ServerName: "Production Web Server",
			ServerType: "web",
			Metrics: &api.ServerMetrics{
				CPU:     &api.CPUMetrics{Cores: 4, Utilization: 45},
				Memory:  &api.MemoryMetrics{Total: 16384, Used: 8192},
				Storage: &api.StorageMetrics{Total: 512000, Used: 204800},
				Network: &api.NetworkMetrics{Bandwidth: 1000},
			},
			Applications: []api.Application{
				{Name: "nginx", Version: "1.24.0", Type: "webserver", Status: "running"},
				{Name: "nodejs", Version: "18.19.0", Type: "runtime", Status: "running"},
			},
			Dependencies: []api.Dependency{
				{Name: "prod-db-01", Type: api.DependencyDatabase, Criticality: api.CriticalityCritical},
				{Name: "prod-cache-01", Type: api.DependencyCache, Criticality: api.CriticalityMedium},
			},
		},
		{
			ServerID:   "prod-app-01",
			ServerName: "Production App Server",
			ServerType: "application",
			Metrics: &api.ServerMetrics{
				CPU:     &api.CPUMetrics{Cores: 4, Utilization: 60},
				Memory:  &api.MemoryMetrics{Total: 16384, Used: 10240},
				Storage: &api.StorageMetrics{Total: 256000, Used: 128000},
				Network: &api.NetworkMetrics{Bandwidth: 1000},
			},
			Applications: []api.Application{
				{Name: "tomcat", Version: "10.1.20", Type: "appserver", Status: "running"},
				{Name: "java", Version: "17.0.10", Type: "runtime", Status: "running"},
			},
			Dependencies: []api.Dependency{
				{Name: "prod-cache-01", Type: api.DependencyCache, Criticality: api.CriticalityMedium},
				{Name: "ldap-server", Type: api.DependencyOther, Criticality: api.CriticalityLow},
			},
		},
		{
			ServerID:   "prod-db-01",
			ServerName: "Production Database",
			ServerType: "database",
			Metrics: &api.ServerMetrics{
				CPU:     &api.CPUMetrics{Cores: 8, Utilization: 85},
				Memory:  &api.MemoryMetrics{Total: 32768, Used: 28672},
				Storage: &api.StorageMetrics{Total: 2048000, Used: 1638400},
				Network: &api.NetworkMetrics{Bandwidth: 10000},
			},
			Applications: []api.Application{
				{Name: "postgresql", Version: "15.6", Type: "database", Status: "running"},
				{Name: "pgbouncer", Version: "1.21.0", Type: "database", Status: "running"},
			},
			Dependencies: []api.Dependency{
				{Name: "san-array", Type: api.DependencyStorage, Criticality: api.CriticalityCritical},
				{Name: "backup-vault", Type: api.DependencyStorage, Criticality: api.CriticalityHigh},
			},
		},
		{
			ServerID:   "prod-cache-01",
			ServerName: "Production Cache",
			ServerType: "cache",
			Metrics: &api.ServerMetrics{
				CPU:     &api.CPUMetrics{Cores: 2, Utilization: 30},
				Memory:  &api.MemoryMetrics{Total: 8192, Used: 4096},
				Storage: &api.StorageMetrics{Total: 102400, Used: 51200},
				Network: &api.NetworkMetrics{Bandwidth: 1000},
			},
			Applications: []api.Application{
				{Name: "redis", Version: "7.2.4", Type: "cache", Status: "running"},
			},
			Dependencies: []api.Dependency{},
		},
	}
}
