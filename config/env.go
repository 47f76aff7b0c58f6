package config

import (
	"strings"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/jamf/validate"
	"github.com/spf13/viper"
)

// Env is structure containing env variables
type Env struct {
	JamfURL                  string        `mapstructure:"JAMF_URL" validate:"required,url,validate_jamf_url"`
	JamfUsername             string        `mapstructure:"JAMF_USERNAME"`
	JamfPassword             string        `mapstructure:"JAMF_PASSWORD"`
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	AllowedOrigins           string        `mapstructure:"ALLOWED_ORIGINS" validate:"required"`
	RedisSystemURL           string        `mapstructure:"REDIS_SYSTEM_URL" validate:"omitempty,uri"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST" validate:"omitempty,hostname|ip"`
	JamfTimeout              time.Duration `mapstructure:"JAMF_TIMEOUT" validate:"min=0"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"omitempty,min=1,max=65535"`
	RatelimiterMax           int           `mapstructure:"RATELIMITER_MAX" validate:"min=1"`
}

var defaults = map[string]interface{}{
	"DEV_ENV":                string(Dev),
	"PORT":                   "3000",
	"ALLOWED_ORIGINS":        "*",
	"JAMF_TIMEOUT":           "30s",
	"REDIS_RATELIMITER_PORT": 6379,
	"RATELIMITER_MAX":        100,
}

// keys that have no default still have to be known to viper to be read from the enviroment
var keys = []string{
	"JAMF_URL",
	"JAMF_USERNAME",
	"JAMF_PASSWORD",
	"REDIS_SYSTEM_URL",
	"REDIS_RATELIMITER_USERNAME",
	"REDIS_RATELIMITER_PASSWORD",
	"REDIS_RATELIMITER_HOST",
}

// Load is a function that is used to laod the env variables from the file and the enviroment
func (e *Env) Load(path ...string) {
	v := viper.New()
	if len(path) > 0 {
		v.AddConfigPath(path[0])
		v.SetConfigFile(strings.TrimRight(path[0], "/") + "/.env")
	} else {
		v.AddConfigPath(".")
		v.SetConfigFile(".env")
	}

	err := e.load(v)
	if err != nil {
		logger.Errorf(err)
	}
}

func (e *Env) load(v *viper.Viper) error {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range keys {
		err := v.BindEnv(key)
		if err != nil {
			return err
		}
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		// the .env file is optional, the enviroment alone is enough
		logger.Error(err)
	}

	err = v.Unmarshal(e)
	if err != nil {
		return err
	}

	return e.Validate()
}

// Validate is a function that is used to validate the loaded configuration
func (e *Env) Validate() error {
	return validate.New().Struct(e)
}

// HasCredentials is a function that is used to find out wether Jamf credentials are configured
func (e *Env) HasCredentials() bool {
	return e.JamfUsername != "" && e.JamfPassword != ""
}
