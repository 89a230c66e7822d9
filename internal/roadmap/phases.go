package roadmap

import (
	"fmt"
	"math"
	"time"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

const dateLayout = "2006-01-02"

// waveOrder fixes the migration sequence: quick lift-and-shift wins
// first, heavy refactors last.
var waveOrder = []api.StrategyType{api.StrategyRehost, api.StrategyReplatform, api.StrategyRefactor}

var waveNames = map[api.StrategyType]string{
	api.StrategyRehost:     "Rehost Wave",
	api.StrategyReplatform: "Replatform Wave",
	api.StrategyRefactor:   "Refactor Wave",
}

func strategyWave(s api.StrategyType) int {
	switch s {
	case api.StrategyRefactor:
		return 2
	case api.StrategyReplatform:
		return 1
	default:
		return 0
	}
}

// assignWaves buckets each server into a wave index. A server lands in
// its strategy's wave unless a prerequisite migrates later, in which
// case it moves to the prerequisite's wave; the topological order
// within a wave keeps prerequisites ahead of dependents.
func assignWaves(g *graph, order []int) []int {
	waves := make([]int, len(g.servers))
	for _, v := range order {
		wave := strategyWave(g.servers[v].Strategy.Strategy)
		for _, u := range g.prereqs[v] {
			if waves[u] > wave {
				wave = waves[u]
			}
		}
		waves[v] = wave
	}
	return waves
}

// buildPhases emits the dated timeline: the assessment bookend, one
// phase per non-empty wave, and the cutover bookend. Phases are
// sequential with no gaps; every phase lasts at least one day. The
// total day count is returned alongside.
func (g *Generator) buildPhases(gr *graph, order, waves []int, path []string, startDate time.Time) ([]api.RoadmapPhase, int) {
	mult := fleetMultiplier(gr.servers)
	cursor := startDate
	totalDays := 0
	phases := make([]api.RoadmapPhase, 0, len(waveOrder)+2)

	appendPhase := func(name string, days int, tasks []string, risks []api.PhaseRisk, milestones []string) {
		if days < 1 {
			days = 1
		}
		end := cursor.AddDate(0, 0, days)
		phases = append(phases, api.RoadmapPhase{
			Name:       name,
			Duration:   durationString(days),
			StartDate:  cursor.Format(dateLayout),
			EndDate:    end.Format(dateLayout),
			Tasks:      tasks,
			Risks:      risks,
			Milestones: milestones,
		})
		cursor = end
		totalDays += days
	}

	appendPhase("Assessment & Planning",
		int(math.Ceil(g.policy.AssessmentBaseDays*mult)),
		[]string{
			"Infrastructure assessment",
			"Dependency mapping",
			"Risk assessment",
			"Migration strategy sign-off",
			"Resource allocation",
		},
		[]api.PhaseRisk{discoveryRisk(gr.servers)},
		[]string{"Project kickoff", "Assessment documentation complete", "Migration strategy approved"},
	)

	onPath := make(map[string]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	for waveIdx, strategy := range waveOrder {
		var members []int
		var hours float64
		for _, v := range order {
			if waves[v] == waveIdx {
				members = append(members, v)
				hours += gr.servers[v].EffortHours
			}
		}
		if len(members) == 0 {
			continue
		}

		tasks := make([]string, 0, len(members))
		milestones := make([]string, 0, len(members)+1)
		risks := []api.PhaseRisk{waveBaseRisk(strategy)}
		for _, v := range members {
			s := gr.servers[v]
			tasks = append(tasks, fmt.Sprintf("Migrate %s (%s)", displayName(s.Record), s.Strategy.Strategy))
			risks = append(risks, serverRisks(s)...)
			if onPath[s.Record.ServerID] {
				milestones = append(milestones, fmt.Sprintf("%s migrated", displayName(s.Record)))
			}
		}
		milestones = append(milestones, fmt.Sprintf("%s complete", waveNames[strategy]))

		appendPhase(waveNames[strategy],
			int(math.Ceil(hours/g.policy.HoursPerDay)),
			tasks, risks, milestones)
	}

	appendPhase("Cutover & Validation",
		int(math.Ceil(g.policy.CutoverBaseDays*mult)),
		[]string{
			"Functionality and performance testing",
			"Final data sync",
			"DNS cutover",
			"Go-live verification",
			"Post-migration monitoring",
		},
		[]api.PhaseRisk{{Description: "Service disruption during cutover", Severity: api.RiskHigh}},
		[]string{"All tests passed", "Production cutover complete", "System operational"},
	)

	return phases, totalDays
}

// discoveryRisk grades how likely the assessment is to miss something:
// high once any server is high complexity, medium otherwise.
func discoveryRisk(servers []AnalyzedServer) api.PhaseRisk {
	severity := api.RiskMedium
	for _, s := range servers {
		if s.Complexity.Level == api.ComplexityHigh {
			severity = api.RiskHigh
			break
		}
	}
	return api.PhaseRisk{Description: "Dependency discovery may be incomplete", Severity: severity}
}

func waveBaseRisk(strategy api.StrategyType) api.PhaseRisk {
	switch strategy {
	case api.StrategyRefactor:
		return api.PhaseRisk{Description: "Architecture changes may introduce regressions", Severity: api.RiskHigh}
	case api.StrategyReplatform:
		return api.PhaseRisk{Description: "Platform service integration issues", Severity: api.RiskMedium}
	default:
		return api.PhaseRisk{Description: "Lift-and-shift compatibility issues", Severity: api.RiskLow}
	}
}

// serverRisks derives per-server phase risks from the inventory
// metrics: hot CPUs, wide dependency fans and nearly-full storage all
// complicate a migration window.
func serverRisks(s AnalyzedServer) []api.PhaseRisk {
	var risks []api.PhaseRisk
	name := displayName(s.Record)
	m := s.Record.Metrics

	if m != nil && m.CPU != nil && m.CPU.Utilization > 80 {
		risks = append(risks, api.PhaseRisk{
			Description: fmt.Sprintf("%s runs above 80%% CPU and may degrade during migration", name),
			Severity:    api.RiskHigh,
		})
	}
	if len(s.Record.Dependencies) > 5 {
		risks = append(risks, api.PhaseRisk{
			Description: fmt.Sprintf("%s has %d dependencies to coordinate", name, len(s.Record.Dependencies)),
			Severity:    api.RiskMedium,
		})
	}
	if m != nil && m.Storage != nil && m.Storage.Total > 0 && m.Storage.Used > 0.8*m.Storage.Total {
		risks = append(risks, api.PhaseRisk{
			Description: fmt.Sprintf("%s storage is over 80%% full, expect a long data transfer", name),
			Severity:    api.RiskMedium,
		})
	}
	return risks
}

func displayName(record api.ServerRecord) string {
	if record.ServerName != "" {
		return record.ServerName
	}
	return record.ServerID
}

func durationString(days int) string {
	if days%7 == 0 {
		weeks := days / 7
		if weeks == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", weeks)
	}
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
