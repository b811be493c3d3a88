package sanity

import (
	"fmt"
	"strings"
)

// ImageURL resolves an opaque image asset reference to a CDN URL at the given
// maximum width and quality. Asset refs look like
// "image-<id>-<width>x<height>-<format>". A missing or malformed ref resolves
// to the empty string so callers can skip the image instead of failing.
func (c *Client) ImageURL(ref string, width, quality int) string {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	id, dims, format := parts[1], parts[2], parts[3]
	if id == "" || !strings.Contains(dims, "x") || format == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s?w=%d&q=%d&fit=max&auto=format",
		c.projectID, c.dataset, id, dims, format, width, quality)
}
