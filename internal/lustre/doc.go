// Package lustre enriches mount records with Lustre component metadata.
//
// The data source is optional: collection runs at most once per
// invocation and a failure only downgrades the overlay to unavailable.
// Columns backed by the overlay then resolve to missing values for every
// record instead of aborting the run.
package lustre
