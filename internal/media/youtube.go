package media

import (
	"fmt"
	"regexp"

	"lumiere/pkg/types"
)

// Matches watch, embed, shorts, live, v and youtu.be/nocookie URL shapes and
// captures the 11-character video id.
var youtubeIDPattern = regexp.MustCompile(`(?i)(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?|shorts|live)/|\S*?[?&]v=)|youtu\.be/|youtube-nocookie\.com/embed/)([a-zA-Z0-9_-]{11})`)

var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractYouTubeID pulls the video id out of any recognized YouTube URL
// shape. A bare 11-character id is accepted as-is. Anything else is a
// validation error, never silently accepted.
func ExtractYouTubeID(url string) (string, error) {
	if url == "" {
		return "", types.ErrInvalidYouTubeURL
	}

	if match := youtubeIDPattern.FindStringSubmatch(url); match != nil {
		return match[1], nil
	}

	if bareIDPattern.MatchString(url) {
		return url, nil
	}

	return "", types.ErrInvalidYouTubeURL
}

func YouTubeThumbnail(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}

func YouTubeEmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", videoID)
}
