package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/jamf/errors"
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/VinukaThejana/jamf/validate"
	"github.com/gofiber/fiber/v2"
)

// Credentials is a struct that contains the credentials controllers
type Credentials struct{}

// Check is a function that is used to validate the Jamf credentials sent by the client
func (Credentials) Check(c *fiber.Ctx) error {
	var payload schemas.Credentials
	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	err := validate.New().Struct(payload)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.CredentialsOutput{
		Username: payload.Username,
		URL:      payload.URL,
	})
}
