package services

import (
	"context"
	"encoding/json"
	errs "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/VinukaThejana/jamf/enums"
	"github.com/VinukaThejana/jamf/errors"
	"github.com/VinukaThejana/jamf/schemas"
	"github.com/VinukaThejana/jamf/utils"
)

const (
	testUsername = "admin"
	testPassword = "secret"
	testToken    = "test-token"
)

// fakeJamf serves the parts of the Jamf Pro api the session talks to
type fakeJamf struct {
	total         int
	devices       []schemas.RawDevice
	failPage      int
	driftFromPage int
	catalog       schemas.UpdateCatalog
	catalogStatus int
	authStatus    int
	authBody      string

	mu      sync.Mutex
	queries []url.Values
}

func newFakeJamf(total int) *fakeJamf {
	devices := make([]schemas.RawDevice, 0, total)
	for i := 0; i < total; i++ {
		devices = append(devices, schemas.RawDevice{
			ID:      utils.Ptr(strconv.Itoa(i)),
			General: &schemas.General{Name: utils.Ptr("mac-" + strconv.Itoa(i))},
		})
	}

	return &fakeJamf{
		total:         total,
		devices:       devices,
		failPage:      -1,
		driftFromPage: -1,
		catalog: schemas.UpdateCatalog{
			MacOS: []string{"14.1.0", "13.6.1"},
			IOS:   []string{"17.1.0"},
		},
	}
}

func (f *fakeJamf) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case tokenPath:
		f.token(w, r)
	case inventoryPath:
		if !f.authorized(w, r) {
			return
		}
		f.inventory(w, r)
	case availableUpdatesPath:
		if !f.authorized(w, r) {
			return
		}
		if f.catalogStatus != 0 {
			w.WriteHeader(f.catalogStatus)
			return
		}
		writeJSON(w, schemas.AvailableUpdates{AvailableUpdates: f.catalog})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeJamf) token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if f.authStatus != 0 {
		w.WriteHeader(f.authStatus)
		return
	}
	username, password, ok := r.BasicAuth()
	if !ok || username != testUsername || password != testPassword {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if f.authBody != "" {
		w.Write([]byte(f.authBody))
		return
	}

	writeJSON(w, schemas.JamfAuth{Token: testToken, Expires: "2026-10-17T12:30:00.000Z"})
}

func (f *fakeJamf) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	return true
}

func (f *fakeJamf) inventory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("page-size"))
	if page == f.failPage {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total := f.total
	if f.driftFromPage >= 0 && page >= f.driftFromPage {
		total++
	}

	start := page * size
	end := start + size
	if start > len(f.devices) {
		start = len(f.devices)
	}
	if end > len(f.devices) {
		end = len(f.devices)
	}

	writeJSON(w, schemas.InventoryPage{TotalCount: total, Results: f.devices[start:end]})
}

func (f *fakeJamf) inventoryRequests() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.queries...)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestSession(t *testing.T, fake *fakeJamf) *JamfSession {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	session, err := NewJamfSession(context.Background(), testUsername, testPassword, srv.URL+"/")
	if err != nil {
		t.Fatalf("NewJamfSession unexpected error: %v", err)
	}
	return session
}

func TestNewJamfSession(t *testing.T) {
	srv := httptest.NewServer(newFakeJamf(0))
	defer srv.Close()

	session, err := NewJamfSession(context.Background(), testUsername, testPassword, " "+srv.URL+"/ ")
	if err != nil {
		t.Fatalf("NewJamfSession unexpected error: %v", err)
	}
	if session.bearerToken != testToken {
		t.Fatalf("bearerToken=%q want %q", session.bearerToken, testToken)
	}
	if session.BaseURL() != srv.URL {
		t.Fatalf("BaseURL()=%q want %q", session.BaseURL(), srv.URL)
	}
	if session.Expires() == "" {
		t.Fatalf("Expires() should be set from the token response")
	}
}

func TestNewJamfSessionFailures(t *testing.T) {
	cases := map[string]struct {
		fake     func(f *fakeJamf)
		password string
		status   bool
	}{
		"wrong password": {password: "wrong", status: true},
		"server error":   {password: testPassword, status: true, fake: func(f *fakeJamf) { f.authStatus = http.StatusInternalServerError }},
		"invalid body":   {password: testPassword, fake: func(f *fakeJamf) { f.authBody = "<html>" }},
		"empty token":    {password: testPassword, fake: func(f *fakeJamf) { f.authBody = `{"token":"","expires":""}` }},
	}

	for name, tc := range cases {
		fake := newFakeJamf(0)
		if tc.fake != nil {
			tc.fake(fake)
		}
		srv := httptest.NewServer(fake)

		session, err := NewJamfSession(context.Background(), testUsername, tc.password, srv.URL)
		srv.Close()
		if err == nil || session != nil {
			t.Fatalf("%s: expected an error, got session %+v", name, session)
		}

		var authErr *errors.AuthError
		if !errs.As(err, &authErr) {
			t.Fatalf("%s: expected *errors.AuthError, got %T", name, err)
		}
		if !errs.Is(err, errors.ErrJamfAuth) {
			t.Fatalf("%s: expected errors.Is(err, ErrJamfAuth)", name)
		}
		if errs.Is(err, errors.ErrJamfFetch) {
			t.Fatalf("%s: an auth failure must not be a fetch failure", name)
		}
		if tc.status && !errs.Is(err, errors.ErrUnexpectedStatus) {
			t.Fatalf("%s: expected the status error to be wrapped, got %v", name, err)
		}
	}
}

func TestNewJamfSessionUnreachable(t *testing.T) {
	srv := httptest.NewServer(newFakeJamf(0))
	base := srv.URL
	srv.Close()

	_, err := NewJamfSession(context.Background(), testUsername, testPassword, base)
	if !errs.Is(err, errors.ErrJamfAuth) {
		t.Fatalf("expected an auth error for an unreachable server, got %v", err)
	}
}

func TestFetchInventoryEmpty(t *testing.T) {
	fake := newFakeJamf(0)
	session := newTestSession(t, fake)

	inventory, err := session.FetchInventory(context.Background(), enums.DeviceSections)
	if err != nil {
		t.Fatalf("FetchInventory unexpected error: %v", err)
	}
	if inventory.Results == nil || len(inventory.Results) != 0 {
		t.Fatalf("expected an empty non nil result, got %#v", inventory.Results)
	}
	if got := len(fake.inventoryRequests()); got != 1 {
		t.Fatalf("inventory requests=%d want 1", got)
	}
}

func TestFetchInventoryPagination(t *testing.T) {
	cases := []struct {
		total    int
		requests int
	}{
		{total: 1, requests: 1},
		{total: 100, requests: 1},
		{total: 101, requests: 2},
		{total: 150, requests: 2},
		{total: 200, requests: 2},
		{total: 250, requests: 3},
	}

	for _, tc := range cases {
		fake := newFakeJamf(tc.total)
		session := newTestSession(t, fake)

		inventory, err := session.FetchInventory(context.Background(), enums.DeviceSections)
		if err != nil {
			t.Fatalf("total %d: FetchInventory unexpected error: %v", tc.total, err)
		}

		requests := fake.inventoryRequests()
		if len(requests) != tc.requests {
			t.Fatalf("total %d: inventory requests=%d want %d", tc.total, len(requests), tc.requests)
		}
		for page, query := range requests {
			if query.Get("page") != strconv.Itoa(page) {
				t.Fatalf("total %d: request %d asked for page %q", tc.total, page, query.Get("page"))
			}
		}

		if inventory.TotalCount != tc.total || len(inventory.Results) != tc.total {
			t.Fatalf("total %d: got totalCount=%d results=%d", tc.total, inventory.TotalCount, len(inventory.Results))
		}
		for i, device := range inventory.Results {
			if *device.ID != strconv.Itoa(i) {
				t.Fatalf("total %d: result %d has id %q, pages were not merged in order", tc.total, i, *device.ID)
			}
		}
	}
}

func TestFetchInventoryQuery(t *testing.T) {
	fake := newFakeJamf(3)
	session := newTestSession(t, fake)

	_, err := session.FetchInventory(context.Background(), []enums.Section{enums.General, enums.Hardware, enums.OperatingSystem})
	if err != nil {
		t.Fatalf("FetchInventory unexpected error: %v", err)
	}

	query := fake.inventoryRequests()[0]
	sections := query["section"]
	want := []string{"GENERAL", "HARDWARE", "OPERATING_SYSTEM"}
	if len(sections) != len(want) {
		t.Fatalf("section=%q want %q", sections, want)
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Fatalf("section=%q want %q", sections, want)
		}
	}
	if query.Get("page-size") != "100" || query.Get("page") != "0" {
		t.Fatalf("unexpected paging parameters %v", query)
	}
}

func TestFetchInventoryWithoutSections(t *testing.T) {
	fake := newFakeJamf(3)
	session := newTestSession(t, fake)

	inventory, err := session.FetchInventory(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchInventory unexpected error: %v", err)
	}
	if len(inventory.Results) != 3 {
		t.Fatalf("results=%d want 3", len(inventory.Results))
	}
	if _, ok := fake.inventoryRequests()[0]["section"]; ok {
		t.Fatalf("no section parameter should be sent when no sections are requested")
	}
}

func TestFetchInventoryPageFailure(t *testing.T) {
	fake := newFakeJamf(250)
	fake.failPage = 1
	session := newTestSession(t, fake)

	inventory, err := session.FetchInventory(context.Background(), enums.DeviceSections)
	if inventory != nil {
		t.Fatalf("partial results must not be returned, got %d", len(inventory.Results))
	}

	var fetchErr *errors.FetchError
	if !errs.As(err, &fetchErr) {
		t.Fatalf("expected *errors.FetchError, got %v", err)
	}
	if !errs.Is(err, errors.ErrJamfFetch) || !errs.Is(err, errors.ErrUnexpectedStatus) {
		t.Fatalf("unexpected error chain %v", err)
	}
	if got := len(fake.inventoryRequests()); got != 2 {
		t.Fatalf("inventory requests=%d want 2, the fetch should stop at the failed page", got)
	}
}

func TestFetchInventoryTotalCountChanged(t *testing.T) {
	fake := newFakeJamf(150)
	fake.driftFromPage = 1
	session := newTestSession(t, fake)

	inventory, err := session.FetchInventory(context.Background(), enums.DeviceSections)
	if inventory != nil {
		t.Fatalf("expected no inventory when the total changes")
	}
	if !errs.Is(err, errors.ErrJamfFetch) || !errs.Is(err, errors.ErrTotalCountChanged) {
		t.Fatalf("expected a total count fetch error, got %v", err)
	}
}

func TestFetchInventoryCancelled(t *testing.T) {
	fake := newFakeJamf(150)
	session := newTestSession(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.FetchInventory(ctx, enums.DeviceSections)
	if !errs.Is(err, errors.ErrJamfFetch) || !errs.Is(err, context.Canceled) {
		t.Fatalf("expected a cancelled fetch error, got %v", err)
	}
	if got := len(fake.inventoryRequests()); got != 0 {
		t.Fatalf("inventory requests=%d want 0", got)
	}
}

func TestFetchUpdateCatalog(t *testing.T) {
	fake := newFakeJamf(0)
	session := newTestSession(t, fake)

	catalog, err := session.FetchUpdateCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchUpdateCatalog unexpected error: %v", err)
	}
	if len(catalog.MacOS) != 2 || catalog.MacOS[0] != "14.1.0" || catalog.MacOS[1] != "13.6.1" {
		t.Fatalf("macOS=%q", catalog.MacOS)
	}
	if len(catalog.IOS) != 1 || catalog.IOS[0] != "17.1.0" {
		t.Fatalf("iOS=%q", catalog.IOS)
	}
}

func TestFetchUpdateCatalogFailure(t *testing.T) {
	fake := newFakeJamf(0)
	fake.catalogStatus = http.StatusBadGateway
	session := newTestSession(t, fake)

	catalog, err := session.FetchUpdateCatalog(context.Background())
	if catalog != nil {
		t.Fatalf("expected no catalog, got %+v", catalog)
	}

	var fetchErr *errors.FetchError
	if !errs.As(err, &fetchErr) || fetchErr.Op != "available updates" {
		t.Fatalf("expected an available updates fetch error, got %v", err)
	}
}

func TestSanitizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                                "",
		" https://example.jamfcloud.com ": "https://example.jamfcloud.com",
		"https://example.jamfcloud.com/":  "https://example.jamfcloud.com",
		"https://example.jamfcloud.com//": "https://example.jamfcloud.com",
		"https://jamf.local:8443/jamf/":   "https://jamf.local:8443/jamf",
	}
	for raw, want := range cases {
		if got := sanitizeBaseURL(raw); got != want {
			t.Fatalf("sanitizeBaseURL(%q)=%q want %q", raw, got, want)
		}
	}
}
