package connect

import (
	"context"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/jamf/config"
	"github.com/redis/go-redis/v9"
)

// Redis is used to manage al redis service connections
type Redis struct {
	System *redis.Client
}

func connect(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.Errorf(err)
	}

	r := redis.NewClient(opt)
	if err := r.Ping(context.Background()).Err(); err != nil {
		logger.Errorf(err)
	}

	return r
}

// InitRedis is a function to initialize all redis instances, redis is optional and nothing is
// initialized when it is not configured
func (c *Connector) InitRedis(env *config.Env) {
	if env.RedisSystemURL == "" {
		logger.Log("REDIS_SYSTEM_URL is not set, system health will not be reported from redis")
		return
	}

	c.R = &Redis{
		System: connect(env.RedisSystemURL),
	}
}
