// Package costing defines a pluggable migration cost model.
//
// Each slice of the bill is encapsulated in one specific Calculator,
// and the lines are aggregated by the Engine into a per-server
// estimate with current versus projected monthly spend, one-time
// migration charges, and the ROI derived from both.
package costing
