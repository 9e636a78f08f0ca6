package deeplink

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultScheme is the custom scheme registered by the mobile client.
	// Deployments override it through configuration.
	DefaultScheme = "com.fashionapp"
	// AuthHost is the host component of the auth callback link.
	AuthHost = "auth"
)

// Tokens are the credentials carried in the fragment of an OAuth callback
// deep link, e.g. com.fashionapp://auth#access_token=...&refresh_token=...
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Parse extracts the token pair from a callback link. The tokens live in
// the URL fragment, not the query, so they never reach any server logs.
// An empty scheme falls back to DefaultScheme.
func Parse(scheme, link string) (*Tokens, error) {
	if scheme == "" {
		scheme = DefaultScheme
	}
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("invalid deep link: %w", err)
	}
	if u.Scheme != scheme || u.Host != AuthHost {
		return nil, fmt.Errorf("unexpected deep link target %s://%s", u.Scheme, u.Host)
	}

	fragment := u.Fragment
	if fragment == "" {
		// Some launchers re-encode the fragment as a query string.
		fragment = u.RawQuery
	}
	values, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return nil, fmt.Errorf("malformed deep link fragment: %w", err)
	}

	tokens := &Tokens{
		AccessToken:  values.Get("access_token"),
		RefreshToken: values.Get("refresh_token"),
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return nil, fmt.Errorf("deep link missing token pair")
	}
	return tokens, nil
}

// Build renders the callback link for a token pair. Used by the OAuth
// callback handler to redirect back into the app. An empty scheme falls
// back to DefaultScheme.
func Build(scheme, accessToken, refreshToken string) string {
	if scheme == "" {
		scheme = DefaultScheme
	}
	values := url.Values{}
	values.Set("access_token", accessToken)
	values.Set("refresh_token", refreshToken)
	return fmt.Sprintf("%s://%s#%s", scheme, AuthHost, values.Encode())
}
