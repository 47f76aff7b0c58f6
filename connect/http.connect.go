package connect

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VinukaThejana/jamf/config"
)

// DefaultHTTPTimeout is used when no timeout is configured for the requests made to Jamf
const DefaultHTTPTimeout = 30 * time.Second

// transport is the process wide connection pool used for every request made to Jamf
var transport struct {
	once    sync.Once
	client  *http.Client
	timeout atomic.Int64
}

// SetHTTPTimeout sets the request timeout of the shared client, it only has an effect before the first
// call to HTTPClient
func SetHTTPTimeout(timeout time.Duration) {
	transport.timeout.Store(int64(timeout))
}

// HTTPClient returns the shared http client, creating it on the first call
func HTTPClient() *http.Client {
	transport.once.Do(func() {
		timeout := time.Duration(transport.timeout.Load())
		if timeout <= 0 {
			timeout = DefaultHTTPTimeout
		}

		transport.client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   20,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	})

	return transport.client
}

// InitHTTP is a function that is used to configure and initialize the shared http client
func (c *Connector) InitHTTP(env *config.Env) {
	SetHTTPTimeout(env.JamfTimeout)
	c.HTTP = HTTPClient()
}
