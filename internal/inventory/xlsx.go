package inventory

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

const serversSheet = "Servers"

// Fleet workbook columns, in order. Applications are encoded as a
// semicolon list of name:version:type[:status]; dependencies as a
// semicolon list of name:type:criticality.
const (
	colServerID = iota
	colServerName
	colServerType
	colCPUCores
	colCPUUtilization
	colMemoryTotal
	colMemoryUsed
	colStorageTotal
	colStorageUsed
	colNetworkBandwidth
	colApplications
	colDependencies
	columnCount
)

// ParseFleetWorkbook reads server records from an XLSX fleet workbook.
// The workbook must carry a Servers sheet with a header row; rows are
// validated with the same rules as a JSON snapshot.
func ParseFleetWorkbook(content []byte) ([]api.ServerRecord, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "error opening fleet workbook")
	}
	defer workbook.Close()

	if !slices.Contains(workbook.GetSheetList(), serversSheet) {
		return nil, fmt.Errorf("fleet workbook has no %q sheet", serversSheet)
	}

	rows, err := workbook.GetRows(serversSheet)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading sheet %q", serversSheet)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no server rows", serversSheet)
	}

	servers := make([]api.ServerRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		server, err := parseServerRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := ValidateRecord(server); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		servers = append(servers, server)
	}

	if len(servers) == 0 {
		return nil, fmt.Errorf("sheet %q has no server rows", serversSheet)
	}

	zap.S().Named("inventory").Infow("parsed fleet workbook", "servers", len(servers))
	return servers, nil
}

func parseServerRow(row []string) (api.ServerRecord, error) {
	cell := func(col int) string {
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	cores, err := parseIntCell(cell(colCPUCores), "CPU Cores")
	if err != nil {
		return api.ServerRecord{}, err
	}

	numbers := make(map[string]float64, 6)
	for _, field := range []struct {
		col  int
		name string
	}{
		{colCPUUtilization, "CPU %"},
		{colMemoryTotal, "Memory Total MB"},
		{colMemoryUsed, "Memory Used MB"},
		{colStorageTotal, "Storage Total MB"},
		{colStorageUsed, "Storage Used MB"},
	} {
		value, err := parseFloatCell(cell(field.col), field.name)
		if err != nil {
			return api.ServerRecord{}, err
		}
		numbers[field.name] = value
	}

	server := api.ServerRecord{
		ServerID:   cell(colServerID),
		ServerName: cell(colServerName),
		ServerType: cell(colServerType),
		Metrics: &api.ServerMetrics{
			CPU:     &api.CPUMetrics{Cores: cores, Utilization: numbers["CPU %"]},
			Memory:  &api.MemoryMetrics{Total: numbers["Memory Total MB"], Used: numbers["Memory Used MB"]},
			Storage: &api.StorageMetrics{Total: numbers["Storage Total MB"], Used: numbers["Storage Used MB"]},
		},
	}

	if bandwidth := cell(colNetworkBandwidth); bandwidth != "" {
		value, err := parseFloatCell(bandwidth, "Network Mbps")
		if err != nil {
			return api.ServerRecord{}, err
		}
		server.Metrics.Network = &api.NetworkMetrics{Bandwidth: value}
	}

	applications, err := parseApplications(cell(colApplications))
	if err != nil {
		return api.ServerRecord{}, err
	}
	server.Applications = applications

	dependencies, err := parseDependencies(cell(colDependencies))
	if err != nil {
		return api.ServerRecord{}, err
	}
	server.Dependencies = dependencies

	return server, nil
}

func parseApplications(value string) ([]api.Application, error) {
	if value == "" {
		return nil, nil
	}

	var applications []api.Application
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("malformed application entry %q: want name:version:type[:status]", entry)
		}
		app := api.Application{
			Name:    strings.TrimSpace(parts[0]),
			Version: strings.TrimSpace(parts[1]),
			Type:    strings.TrimSpace(parts[2]),
			Status:  "running",
		}
		if len(parts) == 4 {
			app.Status = strings.TrimSpace(parts[3])
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func parseDependencies(value string) ([]api.Dependency, error) {
	if value == "" {
		return nil, nil
	}

	var dependencies []api.Dependency
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed dependency entry %q: want name:type:criticality", entry)
		}
		dependencies = append(dependencies, api.Dependency{
			Name:        strings.TrimSpace(parts[0]),
			Type:        api.StringToDependencyType(strings.TrimSpace(parts[1])),
			Criticality: api.StringToCriticality(strings.TrimSpace(parts[2])),
		})
	}
	return dependencies, nil
}

func parseIntCell(value, name string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("missing %s cell", name)
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("malformed %s cell %q", name, value)
	}
	return parsed, nil
}

func parseFloatCell(value, name string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("missing %s cell", name)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s cell %q", name, value)
	}
	return parsed, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
