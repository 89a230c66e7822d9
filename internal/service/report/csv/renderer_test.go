package csv

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/service/report/types"
)

func testReportData() *types.ReportData {
	roi := 8.4
	return &types.ReportData{
		PlanID:        "0194fdc2-fa2f-4cc0-81d3-ff12045b73c8",
		InventoryName: "prod-fleet",
		StartDate:     "2026-03-02",
		Plan: api.MigrationPlan{
			Servers: []api.ServerAnalysis{
				{
					ServerID:          "prod-web-01",
					ServerName:        "Production Web Server",
					Complexity:        api.ComplexityResult{Score: 3.4, Level: api.ComplexityLow},
					MigrationStrategy: api.MigrationStrategy{Strategy: api.StrategyRehost, RiskLevel: api.RiskLow},
					CostEstimate: api.CostEstimate{
						Summary: api.CostSummary{
							CurrentMonthlyCost:   1200,
							ProjectedMonthlyCost: 800,
							MonthlySavings:       400,
							MigrationCost:        3360,
							ROIMonths:            &roi,
							ThreeYearSavings:     11040,
						},
					},
				},
				{
					ServerID:          "prod-db-01",
					ServerName:        "Production Database",
					Complexity:        api.ComplexityResult{Score: 7.8, Level: api.ComplexityHigh},
					MigrationStrategy: api.MigrationStrategy{Strategy: api.StrategyRefactor, RiskLevel: api.RiskHigh},
					CostEstimate: api.CostEstimate{
						Summary: api.CostSummary{
							CurrentMonthlyCost:   2000,
							ProjectedMonthlyCost: 2400,
							MonthlySavings:       -400,
							MigrationCost:        9000,
							ROIMonths:            nil,
							ThreeYearSavings:     -23400,
						},
					},
				},
			},
			Timeline: []api.RoadmapPhase{
				{
					Name:       "Assessment & Planning",
					Duration:   "12 days",
					StartDate:  "2026-03-02",
					EndDate:    "2026-03-13",
					Tasks:      []string{"Inventory validation"},
					Risks:      []api.PhaseRisk{{Description: "Discovery gaps", Severity: api.RiskMedium}},
					Milestones: []string{"Plan approved"},
				},
			},
			ProjectSummary: api.ProjectSummary{
				Duration:     "34 days",
				TotalServers: 2,
				TotalEffort:  160.5,
				CriticalPath: []string{"prod-db-01", "prod-web-01"},
			},
			Warnings: []api.PlanWarning{
				{ServerID: "prod-broken-01", Message: "invalid server"},
			},
		},
		Options:    types.ReportOptions{Format: types.ReportFormatCSV},
		Timestamps: types.ReportTimestamps{Generated: "2026-03-01", GeneratedTime: "10:00:00"},
	}
}

func TestRenderSections(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer().Render(testReportData())
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	reader := csv.NewReader(bytes.NewReader(out))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	content := string(out)
	for _, section := range []string{
		"CLOUD MIGRATION PLAN REPORT",
		"PROJECT SUMMARY",
		"SERVER ANALYSIS",
		"MIGRATION TIMELINE",
		"EXCLUDED SERVERS",
	} {
		if !strings.Contains(content, section) {
			t.Errorf("report is missing the %q section", section)
		}
	}

	if !strings.Contains(content, "Inventory: prod-fleet") {
		t.Error("report does not name the inventory")
	}
	if !strings.Contains(content, "prod-db-01 -> prod-web-01") {
		t.Error("report does not render the critical path")
	}

	var webRow, dbRow []string
	for _, row := range rows {
		if len(row) > 0 && row[0] == "prod-web-01" {
			webRow = row
		}
		if len(row) > 0 && row[0] == "prod-db-01" && len(row) > 2 {
			dbRow = row
		}
	}
	if webRow == nil || dbRow == nil {
		t.Fatal("server analysis rows are missing")
	}
	if got := webRow[10]; got != "8.4" {
		t.Errorf("web roi = %q, want 8.4", got)
	}
	if got := dbRow[10]; got != "n/a" {
		t.Errorf("db roi = %q, want n/a for a plan that never pays back", got)
	}
}

func TestRenderSkipsWarningsSectionWhenClean(t *testing.T) {
	t.Parallel()

	data := testReportData()
	data.Plan.Warnings = nil

	out, err := NewRenderer().Render(data)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(string(out), "EXCLUDED SERVERS") {
		t.Error("report renders an excluded servers section for a clean plan")
	}
}
