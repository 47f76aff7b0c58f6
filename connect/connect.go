// Package connect is used to initialize connections to thrid party services
package connect

import (
	"net/http"

	"github.com/gofiber/storage/redis"
)

// Connector contains various connections to thrid party serivces
type Connector struct {
	Ratelimter *redis.Storage
	R          *Redis
	HTTP       *http.Client
}
