package drive

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// stateToken is echoed back by the consent page; the code is pasted by hand so it is never checked.
const stateToken = "state-token"

// AuthorizationURL builds the Google consent URL for cfg.
// The user opens this URL in a browser, authorizes the app, and receives an authorization code.
// Offline access with forced approval makes Google issue a refresh token every time.
func AuthorizationURL(cfg *oauth2.Config) string {
	return cfg.AuthCodeURL(stateToken, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeAuthorizationCode exchanges an authorization code for an access token and refresh token.
func ExchangeAuthorizationCode(ctx context.Context, cfg *oauth2.Config, code string) (*oauth2.Token, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return tok, nil
}
