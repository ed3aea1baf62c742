package remote

import (
	"context"
	"net/http"
)

const (
	pathLogin        = "/auth/login/"
	pathRegistration = "/auth/registration/"
	collectionAuth   = "auth"
)

// Login calls POST {base}/auth/login/.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, collectionAuth, pathLogin, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Register calls POST {base}/auth/registration/.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, collectionAuth, pathRegistration, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}
