// Package domain contains the core entities of the discovery engine: discovery
// configurations, scan history, scan targets and endpoint results, discovered
// certificates and the installations they were observed at. These types are
// free of infrastructure concerns so they can be shared across packages.
package domain
