package v1alpha1

import "fmt"

// ValidationError reports an inventory record that cannot be planned,
// naming the server and the offending field.
type ValidationError struct {
	ServerID string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.ServerID == "" {
		return fmt.Sprintf("invalid inventory: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid server %q: %s: %s", e.ServerID, e.Field, e.Reason)
}
