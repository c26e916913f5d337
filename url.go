package unifero

import (
	"net/url"
	"strings"
)

// NormalizeURL returns the canonical form of a URL used for crawl
// deduplication: fragment stripped, scheme and host lower-cased, default
// port dropped, and trailing slash removed. Two URLs differing only in
// these respects identify the same page.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	// Drop default ports.
	if host, port, ok := strings.Cut(u.Host, ":"); ok {
		if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
			u.Host = host
		}
	}

	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String(), nil
}

// NormalizeEqual reports whether two URLs normalize to the same page.
// Unparseable URLs only compare equal to themselves verbatim.
func NormalizeEqual(a, b string) bool {
	na, errA := NormalizeURL(a)
	nb, errB := NormalizeURL(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return na == nb
}

// SameHost reports whether rawURL's host matches base's host, ignoring case
// and default ports. Subdomains do not match.
func SameHost(base *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return hostname(base) == hostname(u)
}

func hostname(u *url.URL) string {
	return strings.ToLower(u.Hostname())
}
