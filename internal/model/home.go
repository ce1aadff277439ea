package model

import (
	"strings"
	"time"
)

// HomeConfig is the landing-page content: a promo video as either an
// uploaded file or an external URL. An uploaded file wins over the URL.
type HomeConfig struct {
	ID        int64     `json:"id"`
	VideoFile string    `json:"video_file,omitempty"`
	VideoURL  string    `json:"video_url,omitempty"`
	UpdatedAt time.Time `json:"-"`
}

// HomePage is the landing-page projection served to the frontend.
type HomePage struct {
	VideoFile     string `json:"video_file,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	VideoEmbedURL string `json:"video_embed_url,omitempty"`
}

// VideoEmbedURL returns an embeddable URL for the configured video.
// Common YouTube forms (youtu.be short links, watch?v= links, existing
// embed links) are converted to the /embed/ form; anything else is
// returned unchanged.
func (c *HomeConfig) VideoEmbedURL() string {
	raw := strings.TrimSpace(c.VideoURL)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "youtube.com/embed/") {
		return raw
	}

	var videoID string
	switch {
	case strings.Contains(raw, "youtu.be/"):
		videoID = strings.SplitN(raw, "youtu.be/", 2)[1]
		videoID = strings.SplitN(videoID, "?", 2)[0]
		videoID = strings.SplitN(videoID, "&", 2)[0]
	case strings.Contains(raw, "youtube.com/watch") && strings.Contains(raw, "v="):
		videoID = strings.SplitN(raw, "v=", 2)[1]
		videoID = strings.SplitN(videoID, "&", 2)[0]
	}

	if videoID != "" {
		return "https://www.youtube.com/embed/" + videoID
	}
	return raw
}
