package inventory

import (
	"encoding/json"
	"fmt"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/complexity"
)

// ParseSnapshot decodes and validates a JSON fleet snapshot. The API
// upload path and the CLI share it so both reject the same inputs.
func ParseSnapshot(data []byte) (*api.InventoryForm, error) {
	var form api.InventoryForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("failed to decode fleet snapshot: %w", err)
	}
	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	return &form, nil
}

// ValidateForm checks an upload envelope: a name, at least one server,
// no duplicate ids, and every record valid per ValidateRecord.
func ValidateForm(form api.InventoryForm) error {
	if form.Name == "" {
		return &api.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(form.Servers) == 0 {
		return &api.ValidationError{Field: "servers", Reason: "at least one server is required"}
	}

	seen := make(map[string]struct{}, len(form.Servers))
	for _, server := range form.Servers {
		if err := ValidateRecord(server); err != nil {
			return err
		}
		if _, dup := seen[server.ServerID]; dup {
			return &api.ValidationError{ServerID: server.ServerID, Field: "serverId", Reason: "duplicate server id"}
		}
		seen[server.ServerID] = struct{}{}
	}
	return nil
}

// ValidateRecord checks a single server record: identity, metric blocks
// and ranges, and closed dependency enums. Validation never defaults a
// missing block; it names the field instead.
func ValidateRecord(server api.ServerRecord) error {
	if server.ServerName == "" {
		return &api.ValidationError{ServerID: server.ServerID, Field: "serverName", Reason: "must not be empty"}
	}
	if err := complexity.ValidateMetrics(server); err != nil {
		return err
	}
	for i, dep := range server.Dependencies {
		if dep.Name == "" {
			return &api.ValidationError{ServerID: server.ServerID, Field: fmt.Sprintf("dependencies[%d].name", i), Reason: "must not be empty"}
		}
		if !api.IsValidDependencyType(string(dep.Type)) {
			return &api.ValidationError{ServerID: server.ServerID, Field: fmt.Sprintf("dependencies[%d].type", i), Reason: fmt.Sprintf("unknown dependency type %q", dep.Type)}
		}
		if !api.IsValidCriticality(string(dep.Criticality)) {
			return &api.ValidationError{ServerID: server.ServerID, Field: fmt.Sprintf("dependencies[%d].criticality", i), Reason: fmt.Sprintf("unknown criticality %q", dep.Criticality)}
		}
	}
	return nil
}
