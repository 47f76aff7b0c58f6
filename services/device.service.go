package services

import (
	"context"
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/jamf/enums"
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/VinukaThejana/jamf/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Connect opens a Jamf connection for the given credentials
type Connect func(ctx context.Context, credentials schemas.Credentials) (Jamf, error)

// Live is the Connect implementation that authenticates against a real Jamf Pro instance
func Live(ctx context.Context, credentials schemas.Credentials) (Jamf, error) {
	session, err := NewJamfSession(ctx, credentials.Username, credentials.Password, credentials.URL)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Device struct contains services related to managed devices
type Device struct {
	Connect Connect
}

func (d *Device) connect(ctx context.Context, credentials schemas.Credentials) (Jamf, error) {
	if d.Connect == nil {
		return Live(ctx, credentials)
	}
	return d.Connect(ctx, credentials)
}

// Aggregate is a function that is used to open a Jamf session and build the device summaries
func (d *Device) Aggregate(ctx context.Context, credentials schemas.Credentials) ([]schemas.DeviceSummary, error) {
	traceID := uuid.New()

	client, err := d.connect(ctx, credentials)
	if err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("[ %s ] : Failed to open a Jamf session with %s", traceID, credentials.URL))
		return nil, err
	}

	devices, err := AggregateDevices(ctx, client)
	if err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("[ %s ] : Failed to aggregate devices", traceID))
		return nil, err
	}

	logger.Log(fmt.Sprintf("[ %s ] : Aggregated %d devices", traceID, len(devices)))
	return devices, nil
}

// Computers is a function that is used to open a Jamf session and list the computers without the freshness check
func (d *Device) Computers(ctx context.Context, credentials schemas.Credentials) ([]schemas.ComputerSummary, error) {
	traceID := uuid.New()

	client, err := d.connect(ctx, credentials)
	if err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("[ %s ] : Failed to open a Jamf session with %s", traceID, credentials.URL))
		return nil, err
	}

	inventory, err := client.FetchInventory(ctx, enums.DeviceSections)
	if err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("[ %s ] : Failed to fetch computers", traceID))
		return nil, err
	}

	computers := make([]schemas.ComputerSummary, 0, len(inventory.Results))
	for _, device := range inventory.Results {
		computers = append(computers, ToComputerSummary(device))
	}

	return computers, nil
}

// AggregateDevices is a function that is used to build a summary of every computer in the inventory
//
// The inventory and the update catalog are fetched concurrently and both must succeed, the first
// failure cancels the other request and no summaries are returned.
func AggregateDevices(ctx context.Context, client Jamf) ([]schemas.DeviceSummary, error) {
	var (
		inventory *schemas.InventoryPage
		catalog   *schemas.UpdateCatalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inventory, err = client.FetchInventory(gctx, enums.DeviceSections)
		return err
	})
	g.Go(func() (err error) {
		catalog, err = client.FetchUpdateCatalog(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	devices := make([]schemas.DeviceSummary, 0, len(inventory.Results))
	for _, device := range inventory.Results {
		devices = append(devices, ToSummary(device, catalog.MacOS))
	}

	return devices, nil
}

// ToSummary is a function that is used to map a Jamf computer to a device summary
//
// Sections missing from the computer leave the matching fields nil, os_is_latest is only set
// when the operating system version is known.
func ToSummary(device schemas.RawDevice, known []string) schemas.DeviceSummary {
	summary := schemas.DeviceSummary{
		DeviceID: device.ID,
	}
	if device.General != nil {
		summary.Name = device.General.Name
	}
	if device.Hardware != nil {
		summary.Model = device.Hardware.Model
	}
	if os := device.OperatingSystem; os != nil {
		summary.OS = os.Name
		if os.Version != nil {
			summary.OSIsLatest = utils.Ptr(utils.IsUpToDate(*os.Version, known))
		}
	}

	return summary
}

// ToComputerSummary is a function that is used to map a Jamf computer to a computer summary
func ToComputerSummary(device schemas.RawDevice) schemas.ComputerSummary {
	computer := schemas.ComputerSummary{
		DeviceID: device.ID,
	}
	if device.General != nil {
		computer.Name = device.General.Name
	}
	if device.Hardware != nil {
		computer.Model = device.Hardware.Model
	}
	if device.OperatingSystem != nil {
		computer.OS = device.OperatingSystem.Name
		computer.OSVersion = device.OperatingSystem.Version
	}

	return computer
}
