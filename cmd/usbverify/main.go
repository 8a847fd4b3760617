//go:build linux

// Command usbverify checks an attached USB device against a built-in
// profile or YAML device definition: it opens the device by vendor and
// product ID and compares the manufacturer, product, and serial number
// strings the device reports with the expected descriptor table.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/gousb"

	"github.com/ipmgroup/usbdesc/config"
	"github.com/ipmgroup/usbdesc/descriptor"
	"github.com/ipmgroup/usbdesc/pkg"
	"github.com/ipmgroup/usbdesc/profile"
	"github.com/ipmgroup/usbdesc/provider"
)

var (
	verbose     = flag.Bool("v", false, "Enable verbose logging")
	jsonOut     = flag.Bool("json", false, "Output logs as JSON")
	profileName = flag.String("profile", "", "Built-in profile (laser, ppm)")
	configPath  = flag.String("config", "", "YAML device definition path")
	serialStr   = flag.String("serial", "", "Expected serial number")
)

func main() {
	flag.Parse()

	if *verbose {
		pkg.SetLogLevel(slog.LevelDebug)
	} else {
		pkg.SetLogLevel(slog.LevelInfo)
	}
	if *jsonOut {
		pkg.SetLogger(pkg.NewJSONLogger(os.Stderr, &slog.HandlerOptions{
			Level: pkg.GetLogLevel(),
		}))
	}

	p, err := buildProvider()
	if err != nil {
		pkg.LogError(pkg.ComponentCLI, "provider construction failed", "error", err)
		os.Exit(1)
	}

	if err := verify(p); err != nil {
		pkg.LogError(pkg.ComponentCLI, "verification failed", "error", err)
		os.Exit(1)
	}
	pkg.LogInfo(pkg.ComponentCLI, "device matches descriptor table",
		"vid", fmt.Sprintf("%04x", p.Device().VendorID),
		"pid", fmt.Sprintf("%04x", p.Device().ProductID),
	)
}

func buildProvider() (*provider.Provider, error) {
	var serial provider.SerialNumberReader
	if *serialStr != "" {
		serial = provider.SerialString(*serialStr)
	}

	switch {
	case *configPath != "":
		def, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		return def.Provider()
	case *profileName == "laser":
		return profile.LaserSoundCard(serial)
	case *profileName == "ppm":
		return profile.PPMLoop(serial)
	case *profileName == "":
		return nil, fmt.Errorf("no table selected (-profile or -config): %w", pkg.ErrInvalidParameter)
	}
	return nil, fmt.Errorf("unknown profile %q: %w", *profileName, pkg.ErrNotSupported)
}

func verify(p *provider.Provider) error {
	d := p.Device()

	ctx := gousb.NewContext()
	defer ctx.Close()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(d.VendorID), gousb.ID(d.ProductID))
	if err != nil {
		return fmt.Errorf("open %04x:%04x: %w", d.VendorID, d.ProductID, err)
	}
	if dev == nil {
		return fmt.Errorf("device %04x:%04x not attached: %w", d.VendorID, d.ProductID, pkg.ErrNoDevice)
	}
	defer dev.Close()

	checks := []struct {
		name  string
		index uint8
	}{
		{"manufacturer", d.ManufacturerIndex},
		{"product", d.ProductIndex},
		{"serial", d.SerialNumberIndex},
	}

	mismatches := 0
	for _, c := range checks {
		if c.index == 0 {
			continue
		}
		got, err := dev.GetStringDescriptor(int(c.index))
		if err != nil {
			return fmt.Errorf("read %s string: %w", c.name, err)
		}
		want := descriptor.DecodeString(
			p.StringDescriptorBytes(c.index, descriptor.LangIDUSEnglish))
		if got != want {
			pkg.LogWarn(pkg.ComponentCLI, "string mismatch",
				"field", c.name,
				"device", got,
				"table", want,
			)
			mismatches++
			continue
		}
		pkg.LogDebug(pkg.ComponentCLI, "string matches", "field", c.name, "value", got)
	}

	if mismatches > 0 {
		return fmt.Errorf("device reports %d mismatched strings", mismatches)
	}
	return nil
}
