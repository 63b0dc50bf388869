package domain

import "strings"

// DefaultIcon is rendered when an interest's icon cannot be resolved.
const DefaultIcon = "sparkles"

// knownIcons is the closed set of symbolic icon names the mobile client
// ships with. Anything outside this set must be an uploaded asset URL.
var knownIcons = map[string]struct{}{
	"book":       {},
	"briefcase":  {},
	"camera":     {},
	"code":       {},
	"dumbbell":   {},
	"film":       {},
	"flask":      {},
	"globe":      {},
	"graduation": {},
	"heart":      {},
	"languages":  {},
	"mic":        {},
	"music":      {},
	"palette":    {},
	"pen":        {},
	"plane":      {},
	"sparkles":   {},
	"trophy":     {},
}

// KnownIcon reports whether name is a member of the symbolic icon set.
func KnownIcon(name string) bool {
	_, ok := knownIcons[strings.ToLower(name)]
	return ok
}

// IconRenderable reports whether an icon reference stored on an
// interest can be resolved to something drawable: a known symbol or an
// absolute asset URL.
func IconRenderable(icon string) bool {
	return KnownIcon(icon) || isAssetURL(icon)
}

// ResolveIcon returns icon when renderable, otherwise the fallback.
func ResolveIcon(icon string) string {
	if IconRenderable(icon) {
		return icon
	}
	return DefaultIcon
}

func isAssetURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
