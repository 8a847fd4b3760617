// Package profile holds the descriptor tables of the shipped products as
// ready-to-use provider constructors. Each profile assembles a device
// descriptor, a single configuration, and a string table, and binds the
// caller's serial number source to the serial string slot.
//
// The two tables are kept as independent definitions rather than variants
// of a shared template; they differ in class topology, endpoint layout,
// and string content, and each should be readable on its own against a
// bus capture.
package profile
