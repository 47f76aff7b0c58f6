package schemas

// DeviceSummary is the user freindly view of a managed device
type DeviceSummary struct {
	DeviceID   *string `json:"device_id"`
	Name       *string `json:"name"`
	Model      *string `json:"model"`
	OS         *string `json:"os"`
	OSIsLatest *bool   `json:"os_is_latest"`
}

// DevicesOutput is the response of the devices route
type DevicesOutput struct {
	Devices []DeviceSummary `json:"devices"`
}

// ComputerSummary is the user freindly view of a managed computer without the freshness check
type ComputerSummary struct {
	DeviceID  *string `json:"device_id"`
	Name      *string `json:"name"`
	Model     *string `json:"model"`
	OS        *string `json:"os"`
	OSVersion *string `json:"os_version"`
}

// ComputersOutput is the response of the computers route
type ComputersOutput struct {
	Computers []ComputerSummary `json:"computers"`
}
