// Package config contains the configuration of the Jamf aggregation service
package config

// DevEnv is the enviroment the service is running in
type DevEnv string

const (
	// Prod defines the production enviroment
	Prod DevEnv = "PROD"
	// Dev defines the development enviroment, request logging is turned on
	Dev DevEnv = "DEV"
	// Test defines the enviroment used by the test suites
	Test DevEnv = "TEST"
)

// GetDevEnv is a function to get the enviroment from the loaded configuration,
// unknown values are treated as the test enviroment
func GetDevEnv(env *Env) DevEnv {
	switch DevEnv(env.DevEnv) {
	case Prod:
		return Prod
	case Dev:
		return Dev
	default:
		return Test
	}
}

// IsProd is a function that is used to check wether the service runs in production
func IsProd(env *Env) bool {
	return GetDevEnv(env) == Prod
}
