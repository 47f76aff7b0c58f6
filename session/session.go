// Package session contains request scoped state
package session

import (
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/gofiber/fiber/v2"
)

// Add is a function that is used to add the Jamf credentials to the session
func Add(c *fiber.Ctx, credentials *schemas.Credentials) {
	if credentials == nil {
		return
	}

	c.Locals("jamf_username", credentials.Username)
	c.Locals("jamf_password", credentials.Password)
	c.Locals("jamf_url", credentials.URL)
}

// Get the Jamf credentials from the session
func Get(c *fiber.Ctx) (credentials *schemas.Credentials, ok bool) {
	username, ok := c.Locals("jamf_username").(string)
	if !ok {
		return nil, false
	}
	password, ok := c.Locals("jamf_password").(string)
	if !ok {
		return nil, false
	}
	url, ok := c.Locals("jamf_url").(string)
	if !ok {
		return nil, false
	}

	return &schemas.Credentials{
		Username: username,
		Password: password,
		URL:      url,
	}, true
}
