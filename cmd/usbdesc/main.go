// Command usbdesc dumps the descriptor table of a built-in profile or a
// YAML device definition: device descriptor fields, the configuration
// descriptor as hex and as a parsed walk, and the string table.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

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
	serialStr   = flag.String("serial", "", "Serial number for the serial string slot")
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

	dumpDevice(p)
	dumpConfiguration(p)
	dumpStrings(p)
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

func dumpDevice(p *provider.Provider) {
	d := p.Device()
	fmt.Printf("Device Descriptor (%d bytes)\n", len(p.DeviceBytes()))
	fmt.Printf("  bcdUSB             %04x\n", d.USBVersion)
	fmt.Printf("  bDeviceClass       %02x\n", d.DeviceClass)
	fmt.Printf("  bDeviceSubClass    %02x\n", d.DeviceSubClass)
	fmt.Printf("  bDeviceProtocol    %02x\n", d.DeviceProtocol)
	fmt.Printf("  bMaxPacketSize0    %d\n", d.MaxPacketSize0)
	fmt.Printf("  idVendor           %04x\n", d.VendorID)
	fmt.Printf("  idProduct          %04x\n", d.ProductID)
	fmt.Printf("  bcdDevice          %04x\n", d.DeviceVersion)
	fmt.Printf("  iManufacturer      %d\n", d.ManufacturerIndex)
	fmt.Printf("  iProduct           %d\n", d.ProductIndex)
	fmt.Printf("  iSerialNumber      %d\n", d.SerialNumberIndex)
	fmt.Printf("  bNumConfigurations %d\n", d.NumConfigurations)
	fmt.Printf("\nDevice Qualifier\n%s\n", indentHex(p.DeviceQualifier()))
}

func dumpConfiguration(p *provider.Provider) {
	data := p.Configuration(0)
	fmt.Printf("Configuration Descriptor (%d bytes)\n%s\n", len(data), indentHex(data))

	err := descriptor.Walk(data, func(e descriptor.Element) bool {
		fmt.Printf("  %-24s %s\n", descriptor.TypeName(e.Type), hex.EncodeToString(e.Data))
		return true
	})
	if err != nil {
		pkg.LogError(pkg.ComponentCLI, "configuration walk failed", "error", err)
		os.Exit(1)
	}
	fmt.Println()
}

func dumpStrings(p *provider.Provider) {
	fmt.Printf("String Table (%d entries)\n", p.NumStrings())
	for i := 0; i < p.NumStrings(); i++ {
		index := uint8(i)
		data := p.StringDescriptorBytes(index, descriptor.LangIDUSEnglish)
		if data == nil {
			continue
		}
		if index == 0 {
			fmt.Printf("  %3d  %-20s %s\n", index, "(language IDs)", hex.EncodeToString(data))
			continue
		}
		fmt.Printf("  %3d  %-20q %s\n", index, descriptor.DecodeString(data), hex.EncodeToString(data))
	}
}

// indentHex renders data as indented hex lines of 16 bytes.
func indentHex(data []byte) string {
	out := ""
	for len(data) > 0 {
		n := 16
		if len(data) < n {
			n = len(data)
		}
		out += "  " + hex.EncodeToString(data[:n]) + "\n"
		data = data[n:]
	}
	return out
}
