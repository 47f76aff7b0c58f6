// Package enums contains enums
package enums

import "fmt"

const (
	// SysHealth -> denotes the health status of the system
	SysHealth = "health"
	// SysHealthMsg -> denotes the custom health status message of the system
	SysHealthMsg = "system_message"
)

// Section is a computer inventory section that can be requested from Jamf
type Section int

const (
	// General -> name and other general details of the computer
	General Section = iota
	// Hardware -> make and model of the computer
	Hardware
	// OperatingSystem -> name, version and build of the installed operating system
	OperatingSystem
)

var sectionWire = map[Section]string{
	General:         "GENERAL",
	Hardware:        "HARDWARE",
	OperatingSystem: "OPERATING_SYSTEM",
}

// String returns the value Jamf expects in the section query parameter
func (s Section) String() string {
	if wire, ok := sectionWire[s]; ok {
		return wire
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// ParseSection is a function that is used to get the section from its wire value
func ParseSection(wire string) (Section, error) {
	for section, value := range sectionWire {
		if value == wire {
			return section, nil
		}
	}
	return 0, fmt.Errorf("unknown inventory section %q", wire)
}

// DeviceSections are the sections needed to build a device summary
var DeviceSections = []Section{OperatingSystem, General, Hardware}
