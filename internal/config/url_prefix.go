package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix is an absolute http(s) URL without a trailing slash.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Host returns host[:port] of the prefix.
func (p URLPrefix) Host() string {
	u, err := url.Parse(string(p))
	if err != nil {
		return ""
	}
	return u.Host
}

// Join returns the absolute URL of code under the prefix.
func (p URLPrefix) Join(code string) string {
	return string(p) + "/" + code
}

// Scheme returns http or https.
func (p URLPrefix) Scheme() string {
	scheme, _, _ := strings.Cut(string(p), "://")
	return scheme
}
