// Package roadmap schedules an analyzed fleet into a migration
// timeline. It builds the dependency graph between servers, rejects
// cycles, orders the work topologically, buckets servers into strategy
// waves and emits dated phases plus the project summary with the
// critical path.
package roadmap
