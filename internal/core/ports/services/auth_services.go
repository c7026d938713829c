package services

import "context"

// AuthSvc defines authentication operations for the single admin account.
type AuthSvc interface {
	// Login verifies admin credentials and returns a signed JWT.
	Login(ctx context.Context, username, password string) (string, error)
}
