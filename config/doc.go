// Package config loads YAML device definitions and turns them into
// descriptor table providers. A definition names the device identity
// (vendor/product IDs, versions, strings) and one class function, either a
// UAC2 headset or a CDC-ACM serial port, with its endpoint assignments.
//
//	def, err := config.Load("device.yaml")
//	if err != nil { ... }
//	p, err := def.Provider()
//
// Definitions cover single-configuration composite devices; anything more
// elaborate belongs in a hand-written profile.
package config
