// Package auth supplies caller identity and the administrator check used to
// gate price-oracle writes.
package auth

import (
	"context"
	"crypto/subtle"
	"os"
)

// StaticAuthorizer grants administrator rights to callers presenting the
// configured token. An empty token means no caller is an administrator.
type StaticAuthorizer struct {
	adminToken string
}

// NewStaticAuthorizer creates an authorizer with a fixed admin token.
func NewStaticAuthorizer(adminToken string) *StaticAuthorizer {
	return &StaticAuthorizer{adminToken: adminToken}
}

// NewFromEnv creates an authorizer from the ADMIN_TOKEN environment variable.
func NewFromEnv() *StaticAuthorizer {
	return NewStaticAuthorizer(os.Getenv("ADMIN_TOKEN"))
}

// IsAdmin reports whether the presented credential matches the admin token.
func (a *StaticAuthorizer) IsAdmin(ctx context.Context, credential string) bool {
	if a.adminToken == "" || credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.adminToken), []byte(credential)) == 1
}
