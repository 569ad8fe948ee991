// Package entity defines response payloads of the web layer.
package entity

// Msg is the JSON body sent to AJAX callers.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}
