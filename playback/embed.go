// Package playback resolves how a catalog URL can be played: directly in a
// media element, through a file host's embedded viewer, or only by opening
// the link externally. Everything here is stateless string work; storage
// never depends on it.
package playback

import (
	"net/url"
	"path"
	"strings"
)

// Kind classifies a video link for playback.
type Kind int

const (
	// KindExternal means the link can only be opened in a browser.
	KindExternal Kind = iota
	// KindDirect means the link points at a playable media file.
	KindDirect
	// KindEmbed means an embeddable viewer URL can be derived; see EmbedURL.
	KindEmbed
)

// hosts whose /file/<id>#<key> links have an embedded viewer
var embedHosts = map[string]bool{
	"mega.nz":     true,
	"www.mega.nz": true,
	"mega.co.nz":  true,
	"mega.io":     true,
}

var mediaExts = map[string]bool{
	".mp4":  true,
	".webm": true,
	".ogg":  true,
	".ogv":  true,
	".m4v":  true,
	".mov":  true,
	".mp3":  true,
}

// Classify reports how the link should be played back.
func Classify(raw string) Kind {
	if _, ok := EmbedURL(raw); ok {
		return KindEmbed
	}
	u, err := url.Parse(raw)
	if err != nil {
		return KindExternal
	}
	if mediaExts[strings.ToLower(path.Ext(u.Path))] {
		return KindDirect
	}
	return KindExternal
}

// EmbedURL derives an embeddable viewer URL from a file-host link of the
// shape .../file/<fileId>#<fileKey>, by substituting the /file/ path segment
// with /embed/. The key after # stays untouched. Returns false when the link
// does not match that shape; playback then falls back to opening the link
// externally.
func EmbedURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if !embedHosts[strings.ToLower(u.Host)] {
		return "", false
	}

	fileID, ok := strings.CutPrefix(u.Path, "/file/")
	if !ok || fileID == "" || strings.Contains(fileID, "/") {
		return "", false
	}
	if u.Fragment == "" {
		// The fragment carries the decryption key; without it the viewer
		// cannot render anything.
		return "", false
	}

	u.Path = "/embed/" + fileID
	return u.String(), true
}
