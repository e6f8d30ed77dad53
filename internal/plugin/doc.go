// Package plugin provides a generic named-plugin registry.
//
// A registry maps unique, case-sensitive names to descriptor entries. An
// entry carries at least a name and description plus a factory for building
// plugin instances from an optional configuration blob. Specializations
// (such as the target-system registry in internal/hal) extend the entry type
// with their own metadata and caching.
//
// Registries are process-shared state with a populate-then-read lifecycle:
// registration happens during initialization, lookups happen many times
// during compilation, possibly from concurrent sessions.
package plugin
