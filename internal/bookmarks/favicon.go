package bookmarks

import "net/url"

// DefaultFaviconEndpoint is the favicon service used when the config does
// not override it.
const DefaultFaviconEndpoint = "https://www.google.com/s2/favicons"

// PlaceholderFavicon is the fixed fallback icon used whenever a favicon
// cannot be derived from a bookmark's URL.
const PlaceholderFavicon = `data:image/svg+xml,<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" fill="%23666"><path d="M8 0C3.58 0 0 3.58 0 8s3.58 8 8 8 8-3.58 8-8-3.58-8-8-8zm0 14c-3.31 0-6-2.69-6-6s2.69-6 6-6 6 2.69 6 6-2.69 6-6 6z"/></svg>`

// FaviconURL derives the favicon address for a bookmark deterministically
// from its URL host. An unparsable URL or one without a host yields
// PlaceholderFavicon; the favicon service is never asked for those.
func FaviconURL(endpoint, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return PlaceholderFavicon
	}
	q := url.Values{}
	q.Set("domain", u.Hostname())
	q.Set("sz", "16")
	return endpoint + "?" + q.Encode()
}
