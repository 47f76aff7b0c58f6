package schemas

// JamfAuth is the response of the Jamf token endpoint
type JamfAuth struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

// InventoryPage is a single page of the Jamf computers inventory
type InventoryPage struct {
	TotalCount int         `json:"totalCount"`
	Results    []RawDevice `json:"results"`
}

// RawDevice is the computer record returned by Jamf, every section is optional and only present when requested
type RawDevice struct {
	General               *General               `json:"general"`
	Hardware              *Hardware              `json:"hardware"`
	OperatingSystem       *OperatingSystem       `json:"operatingSystem"`
	Security              *Security              `json:"security"`
	Software              *Software              `json:"software"`
	ConfigurationProfiles []ConfigurationProfile `json:"configurationProfiles"`
	ID                    *string                `json:"id"`
	UDID                  *string                `json:"udid"`
}

// General contains the general section of a computer
type General struct {
	Name *string `json:"name"`
}

// Hardware contains the hardware section of a computer
type Hardware struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
}

// OperatingSystem contains the operating system section of a computer
type OperatingSystem struct {
	Name            *string          `json:"name"`
	Version         *string          `json:"version"`
	Build           *string          `json:"build"`
	SoftwareUpdates []SoftwareUpdate `json:"softwareUpdates"`
}

// SoftwareUpdate is a software update reported by the computer
type SoftwareUpdate struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	PackageName string `json:"packageName"`
}

// Security contains the security section of a computer
type Security struct {
	ActivationLock      *bool  `json:"activationLock"`
	RecoveryLockEnabled *bool  `json:"recoveryLockEnabled"`
	SecureBootLevel     string `json:"secureBootLevel"`
	ExternalBootLevel   string `json:"externalBootLevel"`
	FirewallEnabled     *bool  `json:"firewallEnabled"`
}

// Software contains the software section of a computer
type Software struct {
	AvailableSoftwareUpdates []string `json:"availableSoftwareUpdates"`
	AvailableUpdates         []string `json:"availableUpdates"`
}

// ConfigurationProfile is a configuration profile installed on the computer
type ConfigurationProfile struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	UUID        string `json:"uuid"`
	IsRemovable bool   `json:"isRemovable"`
}

// AvailableUpdates is the response of the managed software updates endpoint
type AvailableUpdates struct {
	AvailableUpdates UpdateCatalog `json:"availableUpdates"`
}

// UpdateCatalog contains the OS versions that Jamf currently offers as updates per platform
type UpdateCatalog struct {
	MacOS []string `json:"macOS"`
	IOS   []string `json:"iOS"`
}
