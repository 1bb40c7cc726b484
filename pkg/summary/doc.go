// Package summary builds read-only overviews of dashboards.
//
// A Summary lists the rows of a dashboard with their panel counts and titles,
// the templating variables when the dashboard declares a templating block,
// and the default time window. Building one never modifies the dashboard, so
// summarizing the same dashboard twice yields the same Summary.
package summary
