// Package errors contians http errors and jamf client errors
package errors

import (
	errs "errors"
	"fmt"

	"github.com/VinukaThejana/jamf/schemas"
	"github.com/gofiber/fiber/v2"
)

//revive:disable

var (
	ErrInternalServerError  = fmt.Errorf("internal_server_error")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrBadRequest           = fmt.Errorf("bad_request")
	ErrCredentialsNotFound  = fmt.Errorf("credentials_not_found")
	ErrJamfAuth             = fmt.Errorf("jamf_auth_failed")
	ErrJamfFetch            = fmt.Errorf("jamf_fetch_failed")
	ErrTotalCountChanged    = fmt.Errorf("jamf_total_count_changed")
	ErrUnexpectedStatus     = fmt.Errorf("jamf_unexpected_status")
	ErrEmptyToken           = fmt.Errorf("jamf_empty_token")
	ErrSystemHealthNotFound = fmt.Errorf("system_health_not_found")
	Okay                    = "okay"
)

type res schemas.Res

func InternalServerErr(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Status: ErrInternalServerError.Error(),
	})
}

func unauthorized(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res{
		Status: err.Error(),
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return unauthorized(c, ErrUnauthorized)
}

func CredentialsNotFound(c *fiber.Ctx) error {
	return unauthorized(c, ErrCredentialsNotFound)
}

func badrequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Status: err.Error(),
	})
}

func BadRequest(c *fiber.Ctx) error {
	return badrequest(c, ErrBadRequest)
}

func Done(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Status: Okay,
	})
}

//revive:enable

// AuthError is returned when exchanging the credentials for a Jamf bearer token fails
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %v", ErrJamfAuth, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is reports ErrJamfAuth as a match so callers do not need the concrete type
func (e *AuthError) Is(target error) bool {
	return target == ErrJamfAuth
}

// FetchError is returned when an inventory page or the update catalog cannot be retrieved
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrJamfFetch, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports ErrJamfFetch as a match so callers do not need the concrete type
func (e *FetchError) Is(target error) bool {
	return target == ErrJamfFetch
}

// CheckJamfError is a struct that is used to classify errors returned by the jamf services
type CheckJamfError struct{}

// Auth is a function that is used to find wether the error came from the token exchange
func (CheckJamfError) Auth(err error) bool {
	return errs.Is(err, ErrJamfAuth)
}

// Fetch is a function that is used to find wether the error came from an inventory or catalog request
func (CheckJamfError) Fetch(err error) bool {
	return errs.Is(err, ErrJamfFetch)
}
