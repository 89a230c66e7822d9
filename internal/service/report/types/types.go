package types

import (
	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

type ReportOptions struct {
	Format ReportFormat
}

// ReportData is the shared input every renderer works from: the stored
// plan, the fleet it was computed over, and the generation timestamps.
type ReportData struct {
	PlanID        string
	InventoryName string
	StartDate     string
	Servers       []api.ServerRecord
	Plan          api.MigrationPlan
	Options       ReportOptions
	Timestamps    ReportTimestamps
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}
