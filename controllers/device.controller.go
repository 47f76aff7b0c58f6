package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/jamf/errors"
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/VinukaThejana/jamf/services"
	"github.com/VinukaThejana/jamf/session"
	"github.com/gofiber/fiber/v2"
)

// Device is a struct that contains the managed device controllers
type Device struct {
	DeviceS *services.Device
}

func (d *Device) service() *services.Device {
	if d.DeviceS == nil {
		return &services.Device{}
	}
	return d.DeviceS
}

// Devices is a function that is used to list the managed devices along with their OS freshness
func (d *Device) Devices(c *fiber.Ctx) error {
	credentials, ok := session.Get(c)
	if !ok {
		return errors.CredentialsNotFound(c)
	}

	devices, err := d.service().Aggregate(c.UserContext(), *credentials)
	if err != nil {
		logJamfError(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.DevicesOutput{
		Devices: devices,
	})
}

// Computers is a function that is used to list the managed computers with their OS version
func (d *Device) Computers(c *fiber.Ctx) error {
	credentials, ok := session.Get(c)
	if !ok {
		return errors.CredentialsNotFound(c)
	}

	computers, err := d.service().Computers(c.UserContext(), *credentials)
	if err != nil {
		logJamfError(err)
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.ComputersOutput{
		Computers: computers,
	})
}

func logJamfError(err error) {
	check := errors.CheckJamfError{}
	switch {
	case check.Auth(err):
		logger.ErrorWithMsg(err, "Failed to authenticate with Jamf")
	case check.Fetch(err):
		logger.ErrorWithMsg(err, "Failed to fetch from Jamf")
	default:
		logger.Error(err)
	}
}
