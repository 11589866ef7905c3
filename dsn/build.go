package dsn

import (
	"net/url"
	"strings"

	"github.com/rediwo/redi-sqlite/types"
)

const upperhex = "0123456789ABCDEF"

// shouldEscapePath reports whether a filename byte must be
// percent-encoded in the canonical URL. The set follows the WHATWG path
// percent-encode set (https://url.spec.whatwg.org/#path-percent-encode-set):
// controls and non-ASCII bytes, plus the ASCII characters that would
// otherwise be misread as descriptor delimiters.
func shouldEscapePath(c byte) bool {
	switch c {
	case ' ', '"', '#', '<', '>', '?', '`', '{', '}':
		return true
	}
	return c < 0x20 || c >= 0x7f
}

// pathEscape percent-encodes a filename for the canonical URL.
func pathEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscapePath(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// BuildURL serializes a config into its canonical `sqlite://` URL.
//
// The mode and cache parameters are always emitted; immutable only when
// true; vfs only when set. Pragma overrides are a one-way input applied
// at open time and are never serialized back.
//
// The URL is built with an opaque `//<encoded-filename>` part rather
// than a host/path split, so filenames containing `:` (such as the
// synthetic in-memory identifiers) survive re-encoding. Every valid
// config is serializable; there is no error path.
func BuildURL(config types.Config) *url.URL {
	u := &url.URL{
		Scheme: "sqlite",
		Opaque: "//" + pathEscape(config.Filename),
	}

	var query strings.Builder
	query.WriteString("mode=")
	query.WriteString(config.Mode().String())

	if config.SharedCache {
		query.WriteString("&cache=shared")
	} else {
		query.WriteString("&cache=private")
	}

	if config.Immutable {
		query.WriteString("&immutable=true")
	}

	if config.VFS != "" {
		query.WriteString("&vfs=")
		query.WriteString(url.QueryEscape(config.VFS))
	}

	u.RawQuery = query.String()
	return u
}
