package config

import (
	"net/url"
	"strings"
)

// DefaultServerURL is the collector endpoint used when no valid server URL
// is configured.
const DefaultServerURL = "http://localhost:8200"

// ServerURL is one collector endpoint. URL carries the rooted form used
// for transport; Raw preserves the original literal so endpoints can be
// compared against the exact configured value.
type ServerURL struct {
	URL *url.URL
	Raw string
}

// String returns the rooted URL string.
func (s ServerURL) String() string {
	if s.URL == nil {
		return s.Raw
	}
	return s.URL.String()
}

// parseServerURL parses one list element into an absolute, rooted URL.
func parseServerURL(raw string) (ServerURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ServerURL{}, newParseError(raw, "not a valid URL", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return ServerURL{}, newParseError(raw, "not an absolute URL", nil)
	}
	rooted := *u
	if !strings.HasSuffix(rooted.Path, "/") {
		rooted.Path += "/"
	}
	return ServerURL{URL: &rooted, Raw: raw}, nil
}

// parseServerURLs splits a comma-separated list and parses each element
// independently. Invalid elements are dropped and reported through report;
// valid elements keep their source order. The caller substitutes the
// default endpoint when nothing survives.
func parseServerURLs(raw string, report func(piece string, err error)) []ServerURL {
	var urls []ServerURL
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		u, err := parseServerURL(piece)
		if err != nil {
			if report != nil {
				report(piece, err)
			}
			continue
		}
		urls = append(urls, u)
	}
	return urls
}

// mustServerURL parses a compiled-in endpoint literal.
func mustServerURL(raw string) ServerURL {
	u, err := parseServerURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}
