package controllers

import (
	"strconv"

	"github.com/VinukaThejana/jamf/connect"
	"github.com/VinukaThejana/jamf/enums"
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/gofiber/fiber/v2"
)

// System is a struct that contains system level controllers
type System struct {
	Conn *connect.Connector
}

// Hello is a function that is used to check that the server is running
func (s *System) Hello(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.Hello{
		Data: "hello world",
	})
}

// Health is a function that is notifys the system health
//
// The health flag and message are operated from redis, without redis the system is reported healthy
func (s *System) Health(c *fiber.Ctx) error {
	if s.Conn == nil || s.Conn.R == nil || s.Conn.R.System == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"health": true,
		})
	}

	var health bool
	var err error
	status := s.Conn.R.System.Get(c.UserContext(), enums.SysHealth).Val()
	if status == "" {
		health = false
	} else {
		health, err = strconv.ParseBool(status)
		if err != nil {
			health = false
		}
	}

	msg := s.Conn.R.System.Get(c.UserContext(), enums.SysHealthMsg).Val()
	if msg == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"health": health,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"health":  health,
		"message": msg,
	})
}
