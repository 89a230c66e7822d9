package inventory

import (
	"encoding/json"
	"errors"
	"testing"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

func validForm() api.InventoryForm {
	return api.InventoryForm{
		Name: "prod-fleet",
		Servers: []api.ServerRecord{
			{
				ServerID:   "prod-web-01",
				ServerName: "Production Web Server",
				ServerType: "web",
				Metrics: &api.ServerMetrics{
					CPU:     &api.CPUMetrics{Cores: 4, Utilization: 45},
					Memory:  &api.MemoryMetrics{Total: 16384, Used: 8192},
					Storage: &api.StorageMetrics{Total: 512000, Used: 204800},
				},
				Dependencies: []api.Dependency{
					{Name: "prod-db-01", Type: api.DependencyDatabase, Criticality: api.CriticalityCritical},
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
				},
			},
		},
	}
}

func TestParseSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(validForm())
	if err != nil {
		t.Fatalf("marshalling fixture: %v", err)
	}

	form, err := ParseSnapshot(data)
	if err != nil {
		t.Fatalf("ParseSnapshot() returned error: %v", err)
	}
	if form.Name != "prod-fleet" {
		t.Errorf("name = %q, want prod-fleet", form.Name)
	}
	if len(form.Servers) != 2 {
		t.Errorf("servers = %d, want 2", len(form.Servers))
	}
}

func TestParseSnapshotRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := ParseSnapshot([]byte(`{"name": "prod-fleet", "servers": [`)); err == nil {
		t.Fatal("ParseSnapshot() accepted malformed JSON")
	}
}

func TestValidateFormRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(form *api.InventoryForm)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(form *api.InventoryForm) { form.Name = "" },
			wantField: "name",
		},
		{
			name:      "no servers",
			mutate:    func(form *api.InventoryForm) { form.Servers = nil },
			wantField: "servers",
		},
		{
			name: "duplicate server id",
			mutate: func(form *api.InventoryForm) {
				form.Servers[1].ServerID = form.Servers[0].ServerID
			},
			wantField: "serverId",
		},
		{
			name: "missing server name",
			mutate: func(form *api.InventoryForm) {
				form.Servers[0].ServerName = ""
			},
			wantField: "serverName",
		},
		{
			name: "missing metrics block",
			mutate: func(form *api.InventoryForm) {
				form.Servers[0].Metrics = nil
			},
			wantField: "metrics",
		},
		{
			name: "utilization out of range",
			mutate: func(form *api.InventoryForm) {
				form.Servers[0].Metrics.CPU.Utilization = 140
			},
			wantField: "metrics.cpu.utilization",
		},
		{
			name: "unknown dependency type",
			mutate: func(form *api.InventoryForm) {
				form.Servers[0].Dependencies[0].Type = "mainframe"
			},
			wantField: "dependencies[0].type",
		},
		{
			name: "unknown criticality",
			mutate: func(form *api.InventoryForm) {
				form.Servers[0].Dependencies[0].Criticality = "severe"
			},
			wantField: "dependencies[0].criticality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			tt.mutate(&form)

			err := ValidateForm(form)
			var validationErr *api.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want *api.ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}
