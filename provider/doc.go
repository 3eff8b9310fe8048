// Package provider defines the closed set of database backends the
// engine loader supports and the normalization from user-facing
// connector names onto canonical engine families.
//
// The set is a static enumeration. Every supported name maps onto one
// of four families (postgresql, mysql, sqlite, sqlserver); anything
// else is rejected before any I/O happens.
package provider
