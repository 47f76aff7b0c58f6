// Package middleware contains fiber middlewares
package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/VinukaThejana/jamf/config"
	"github.com/VinukaThejana/jamf/errors"
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/VinukaThejana/jamf/session"
	"github.com/gofiber/fiber/v2"
)

// Jamf contains Jamf related middlewares
type Jamf struct {
	Env *config.Env
}

// Credentials is a function that is used to resolve the Jamf credentials of the request
//
// A Basic Authorization header overrides the configured username and password for this request,
// the Jamf url always comes from the configuration
func (j *Jamf) Credentials(c *fiber.Ctx) error {
	credentials := schemas.Credentials{
		Username: j.Env.JamfUsername,
		Password: j.Env.JamfPassword,
		URL:      j.Env.JamfURL,
	}

	authorization := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authorization, "Basic ") {
		username, password, ok := parseBasicAuth(strings.TrimPrefix(authorization, "Basic "))
		if !ok {
			return errors.BadRequest(c)
		}

		credentials.Username = username
		credentials.Password = password
	}

	if credentials.Username == "" || credentials.Password == "" {
		return errors.CredentialsNotFound(c)
	}

	session.Add(c, &credentials)
	return c.Next()
}

func parseBasicAuth(encoded string) (username, password string, ok bool) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", false
	}

	return username, password, true
}
