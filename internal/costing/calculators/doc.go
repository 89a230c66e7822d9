// Package calculators holds the costing.Calculator implementations:
// the on-premises baseline, the cloud compute/storage/database/network
// lines, and the one-time migration execution charge.
package calculators
