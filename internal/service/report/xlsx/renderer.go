package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/service/report/types"
)

const (
	summarySheet  = "Summary"
	serversSheet  = "Servers"
	timelineSheet = "Timeline"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := r.writeSummary(workbook, data); err != nil {
		return nil, err
	}
	if err := r.writeServers(workbook, data.Plan.Servers); err != nil {
		return nil, err
	}
	if err := r.writeTimeline(workbook, data.Plan.Timeline); err != nil {
		return nil, err
	}

	// The default sheet becomes Summary; delete the placeholder.
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeSummary(workbook *excelize.File, data *types.ReportData) error {
	if _, err := workbook.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", summarySheet, err)
	}

	summary := data.Plan.ProjectSummary
	rows := [][]any{
		{"Cloud Migration Plan Report"},
		{"Inventory", data.InventoryName},
		{"Plan ID", data.PlanID},
		{"Generated", fmt.Sprintf("%s %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)},
		{},
		{"Start Date", data.StartDate},
		{"Duration", summary.Duration},
		{"Servers Scheduled", summary.TotalServers},
		{"Total Effort (hours)", summary.TotalEffort},
		{"Critical Path", strings.Join(summary.CriticalPath, " -> ")},
		{"Excluded Servers", len(data.Plan.Warnings)},
	}

	return writeRows(workbook, summarySheet, rows)
}

func (r *Renderer) writeServers(workbook *excelize.File, servers []api.ServerAnalysis) error {
	if _, err := workbook.NewSheet(serversSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", serversSheet, err)
	}

	rows := [][]any{{
		"Server ID", "Server Name", "Complexity Score", "Complexity Level",
		"Strategy", "Risk Level", "Current Monthly Cost", "Projected Monthly Cost",
		"Monthly Savings", "Migration Cost", "ROI Months", "3-Year Savings",
	}}

	for _, s := range servers {
		summary := s.CostEstimate.Summary
		var roi any = "n/a"
		if summary.ROIMonths != nil {
			roi = *summary.ROIMonths
		}
		rows = append(rows, []any{
			s.ServerID,
			s.ServerName,
			s.Complexity.Score,
			string(s.Complexity.Level),
			string(s.MigrationStrategy.Strategy),
			string(s.MigrationStrategy.RiskLevel),
			summary.CurrentMonthlyCost,
			summary.ProjectedMonthlyCost,
			summary.MonthlySavings,
			summary.MigrationCost,
			roi,
			summary.ThreeYearSavings,
		})
	}

	return writeRows(workbook, serversSheet, rows)
}

func (r *Renderer) writeTimeline(workbook *excelize.File, timeline []api.RoadmapPhase) error {
	if _, err := workbook.NewSheet(timelineSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", timelineSheet, err)
	}

	rows := [][]any{{"Phase", "Duration", "Start Date", "End Date", "Tasks", "Risks", "Milestones"}}

	for _, phase := range timeline {
		risks := make([]string, 0, len(phase.Risks))
		for _, risk := range phase.Risks {
			risks = append(risks, fmt.Sprintf("%s (%s)", risk.Description, risk.Severity))
		}
		rows = append(rows, []any{
			phase.Name,
			phase.Duration,
			phase.StartDate,
			phase.EndDate,
			strings.Join(phase.Tasks, "; "),
			strings.Join(risks, "; "),
			strings.Join(phase.Milestones, "; "),
		})
	}

	return writeRows(workbook, timelineSheet, rows)
}

func writeRows(workbook *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
