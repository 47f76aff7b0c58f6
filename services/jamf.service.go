package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/VinukaThejana/jamf/connect"
	"github.com/VinukaThejana/jamf/enums"
	"github.com/VinukaThejana/jamf/errors"
	"github.com/VinukaThejana/jamf/schemas"
)

// PageSize is the number of computers requested per inventory page
const PageSize = 100

const (
	tokenPath            = "/api/v1/auth/token"
	inventoryPath        = "/api/v1/computers-inventory"
	availableUpdatesPath = "/api/v1/managed-software-updates/available-updates"
)

// Jamf is the set of Jamf operations the device services depend on
type Jamf interface {
	// FetchInventory returns every computer in the inventory with the given sections populated
	FetchInventory(ctx context.Context, sections []enums.Section) (*schemas.InventoryPage, error)
	// FetchUpdateCatalog returns the OS versions currently offered as updates
	FetchUpdateCatalog(ctx context.Context) (*schemas.UpdateCatalog, error)
}

// JamfSession is an authenticated connection to a Jamf Pro instance
//
// A session lives for a single request and is never refreshed, re-authenticating means
// creating a new session. It is immutable after creation and safe for concurrent use.
type JamfSession struct {
	client      *http.Client
	baseURL     string
	bearerToken string
	expires     string
}

// NewJamfSession is a function that is used to exchange the username and password for a bearer token
func NewJamfSession(ctx context.Context, username, password, baseURL string) (*JamfSession, error) {
	session := &JamfSession{
		client:  connect.HTTPClient(),
		baseURL: sanitizeBaseURL(baseURL),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, session.baseURL+tokenPath, nil)
	if err != nil {
		return nil, &errors.AuthError{Err: err}
	}
	req.SetBasicAuth(username, password)
	req.Header.Set("Accept", "application/json")

	var auth schemas.JamfAuth
	err = session.do(req, &auth)
	if err != nil {
		return nil, &errors.AuthError{Err: err}
	}
	if auth.Token == "" {
		return nil, &errors.AuthError{Err: errors.ErrEmptyToken}
	}

	session.bearerToken = auth.Token
	session.expires = auth.Expires
	return session, nil
}

// BaseURL returns the Jamf Pro url the session was created for
func (j *JamfSession) BaseURL() string {
	return j.baseURL
}

// Expires returns the token expiry reported by Jamf, it is informational only
func (j *JamfSession) Expires() string {
	return j.expires
}

// FetchInventory is a function that is used to fetch all the computers from the computers inventory
//
// Pages are requested one after the other and merged in order. Any failed page fails the whole
// fetch, and a page that reports a different total than the first page is treated as a failure.
func (j *JamfSession) FetchInventory(ctx context.Context, sections []enums.Section) (*schemas.InventoryPage, error) {
	inventory, err := j.fetchInventoryPage(ctx, sections, 0)
	if err != nil {
		return nil, err
	}
	if inventory.Results == nil {
		inventory.Results = []schemas.RawDevice{}
	}
	if inventory.TotalCount <= PageSize {
		return inventory, nil
	}

	numPages := (inventory.TotalCount + PageSize - 1) / PageSize
	for page := 1; page < numPages; page++ {
		next, err := j.fetchInventoryPage(ctx, sections, page)
		if err != nil {
			return nil, err
		}
		if next.TotalCount != inventory.TotalCount {
			return nil, &errors.FetchError{
				Op:  fmt.Sprintf("inventory page %d", page),
				Err: fmt.Errorf("%w: %d became %d", errors.ErrTotalCountChanged, inventory.TotalCount, next.TotalCount),
			}
		}

		inventory.Results = append(inventory.Results, next.Results...)
	}

	return inventory, nil
}

func (j *JamfSession) fetchInventoryPage(ctx context.Context, sections []enums.Section, page int) (*schemas.InventoryPage, error) {
	op := fmt.Sprintf("inventory page %d", page)

	query := url.Values{}
	for _, section := range sections {
		query.Add("section", section.String())
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("page-size", strconv.Itoa(PageSize))

	req, err := j.newRequest(ctx, inventoryPath, query)
	if err != nil {
		return nil, &errors.FetchError{Op: op, Err: err}
	}

	var inventory schemas.InventoryPage
	err = j.do(req, &inventory)
	if err != nil {
		return nil, &errors.FetchError{Op: op, Err: err}
	}

	return &inventory, nil
}

// FetchUpdateCatalog is a function that is used to get the available OS updates from Jamf
func (j *JamfSession) FetchUpdateCatalog(ctx context.Context) (*schemas.UpdateCatalog, error) {
	const op = "available updates"

	req, err := j.newRequest(ctx, availableUpdatesPath, nil)
	if err != nil {
		return nil, &errors.FetchError{Op: op, Err: err}
	}

	var updates schemas.AvailableUpdates
	err = j.do(req, &updates)
	if err != nil {
		return nil, &errors.FetchError{Op: op, Err: err}
	}

	return &updates.AvailableUpdates, nil
}

func (j *JamfSession) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	endpoint := j.baseURL + path
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", j.bearerToken))

	return req, nil
}

// do sends the request and decodes the json body into out
func (j *JamfSession) do(req *http.Request, out interface{}) error {
	res, err := j.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w: %s: %s", errors.ErrUnexpectedStatus, res.Status, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func sanitizeBaseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	return strings.TrimRight(trimmed, "/")
}
