// Package common contains shared constants and sentinel errors used across
// studydesk components.
package common

const (
	// AccessTokenHeaderName is the gRPC metadata key carrying the access
	// token of an authenticated session.
	AccessTokenHeaderName = "access_token"

	// APIKeyHeaderName is the gRPC metadata key carrying the public
	// (anonymous-role) API key. Every store call must present it.
	APIKeyHeaderName = "apikey"
)
