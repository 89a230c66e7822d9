// Package planner orchestrates the planning pipeline. Each server of a
// fleet is analyzed on its own worker (complexity scoring, strategy
// selection, cost estimation) with bounded parallelism; the roadmap
// generator then schedules the valid remainder into a dated timeline.
// A server whose analysis fails is excluded with a warning instead of
// failing the whole plan.
package planner
