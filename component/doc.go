// Package component defines the core interfaces for lifecycle-managed
// parts of enginekit.
//
// Components represent services that require startup, shutdown, and
// health monitoring, such as the engine loader with its preloaded
// providers. They are registered with a Registry for deterministic
// lifecycle ordering.
package component
