package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

// Login exchanges credentials for a bearer token and the staff profile.
// Token issuance itself belongs to the identity service; the client
// only carries the exchange.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	req := loginRequest{Identifier: identifier, Password: password}
	var resp loginResponse
	if err := c.doJSON(ctx, "login", http.MethodPost, "/auth/login", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.AccessToken, mapUser(resp.User), nil
}
