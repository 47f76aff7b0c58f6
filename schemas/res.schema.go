// Package schemas contains request, response and upstream payload shapes
package schemas

// Res is the generic status response
type Res struct {
	Status string `json:"status"`
}

// Hello is the response of the root route
type Hello struct {
	Data string `json:"data"`
}
