package domain

import "strings"

var postPathMarkers = []string{"p", "reel", "reels", "tv"}

// ExtractPostID returns the shortcode from Instagram style permalinks
// (/p/{id}, /reel/{id}, /tv/{id}). The empty string means no path matched.
func ExtractPostID(url string) string {
	url = strings.TrimSpace(url)
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if url == "" {
		return ""
	}
	parts := strings.Split(strings.Trim(url, "/"), "/")
	for i := 0; i < len(parts)-1; i++ {
		for _, marker := range postPathMarkers {
			if parts[i] == marker && parts[i+1] != "" {
				return parts[i+1]
			}
		}
	}
	return ""
}

// ExtractPostIDOrCode is ExtractPostID that also accepts a bare shortcode,
// as the profile API sends it.
func ExtractPostIDOrCode(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.ContainsAny(s, "/.:?#") {
		return s
	}
	return ExtractPostID(s)
}
