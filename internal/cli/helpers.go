package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	InventoryKind = "inventory"
	PlanKind      = "plan"
)

var (
	pluralKinds = map[string]string{
		InventoryKind: "inventories",
		PlanKind:      "plans",
	}
)

func parseAndValidateKindId(arg string) (string, *uuid.UUID, error) {
	kind, idStr, _ := strings.Cut(arg, "/")
	kind = singular(kind)
	if _, ok := pluralKinds[kind]; !ok {
		return "", nil, fmt.Errorf("invalid resource kind: %s", kind)
	}

	if idStr == "" {
		return kind, nil, nil
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid %s id %q: %w", kind, idStr, err)
	}
	return kind, &id, nil
}

func parseUUID(s string) (*uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func singular(kind string) string {
	for singular, plural := range pluralKinds {
		if kind == plural {
			return singular
		}
	}
	return kind
}

func plural(kind string) string {
	return pluralKinds[kind]
}
