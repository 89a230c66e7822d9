package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{"CLOUD MIGRATION PLAN REPORT"})
	csvRows = append(csvRows, []string{fmt.Sprintf("Inventory: %s", data.InventoryName)})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})

	csvRows = r.addProjectSummary(csvRows, data.Plan.ProjectSummary, data.StartDate)
	csvRows = r.addServerAnalysis(csvRows, data.Plan.Servers)
	csvRows = r.addTimeline(csvRows, data.Plan.Timeline)

	if len(data.Plan.Warnings) > 0 {
		csvRows = r.addWarnings(csvRows, data.Plan.Warnings)
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addProjectSummary(csvRows [][]string, summary api.ProjectSummary, startDate string) [][]string {
	csvRows = append(csvRows, []string{"PROJECT SUMMARY"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Metric", "Value"})
	csvRows = append(csvRows, []string{"Start Date", startDate})
	csvRows = append(csvRows, []string{"Duration", summary.Duration})
	csvRows = append(csvRows, []string{"Servers Scheduled", fmt.Sprintf("%d", summary.TotalServers)})
	csvRows = append(csvRows, []string{"Total Effort (hours)", fmt.Sprintf("%.1f", summary.TotalEffort)})
	csvRows = append(csvRows, []string{"Critical Path", strings.Join(summary.CriticalPath, " -> ")})
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addServerAnalysis(csvRows [][]string, servers []api.ServerAnalysis) [][]string {
	csvRows = append(csvRows, []string{"SERVER ANALYSIS"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{
		"Server ID", "Server Name", "Complexity Score", "Complexity Level",
		"Strategy", "Risk Level", "Current Monthly Cost", "Projected Monthly Cost",
		"Monthly Savings", "Migration Cost", "ROI Months", "3-Year Savings"})

	for _, s := range servers {
		summary := s.CostEstimate.Summary
		roi := "n/a"
		if summary.ROIMonths != nil {
			roi = fmt.Sprintf("%.1f", *summary.ROIMonths)
		}
		csvRows = append(csvRows, []string{
			s.ServerID,
			s.ServerName,
			fmt.Sprintf("%.1f", s.Complexity.Score),
			string(s.Complexity.Level),
			string(s.MigrationStrategy.Strategy),
			string(s.MigrationStrategy.RiskLevel),
			fmt.Sprintf("%.2f", summary.CurrentMonthlyCost),
			fmt.Sprintf("%.2f", summary.ProjectedMonthlyCost),
			fmt.Sprintf("%.2f", summary.MonthlySavings),
			fmt.Sprintf("%.2f", summary.MigrationCost),
			roi,
			fmt.Sprintf("%.2f", summary.ThreeYearSavings)})
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addTimeline(csvRows [][]string, timeline []api.RoadmapPhase) [][]string {
	csvRows = append(csvRows, []string{"MIGRATION TIMELINE"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Phase", "Duration", "Start Date", "End Date", "Tasks", "Risks", "Milestones"})

	for _, phase := range timeline {
		risks := make([]string, 0, len(phase.Risks))
		for _, risk := range phase.Risks {
			risks = append(risks, fmt.Sprintf("%s (%s)", risk.Description, risk.Severity))
		}
		csvRows = append(csvRows, []string{
			phase.Name,
			phase.Duration,
			phase.StartDate,
			phase.EndDate,
			strings.Join(phase.Tasks, "; "),
			strings.Join(risks, "; "),
			strings.Join(phase.Milestones, "; ")})
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addWarnings(csvRows [][]string, warnings []api.PlanWarning) [][]string {
	csvRows = append(csvRows, []string{"EXCLUDED SERVERS"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Server ID", "Reason"})

	for _, w := range warnings {
		csvRows = append(csvRows, []string{w.ServerID, w.Message})
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv writer: %w", err)
	}

	return buf.Bytes(), nil
}
