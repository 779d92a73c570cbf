package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultImportTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Default values
const (
	DefaultPlaylistName = "Imported Lectures"
)

// URL templates
const (
	YouTubeVideoURLTemplate    = "https://www.youtube.com/watch?v=%s"
	YouTubePlaylistURLTemplate = "https://www.youtube.com/playlist?list=%s"
)

// Playlist title constants
const (
	MinPrefixLength = 10
	LecturesSuffix  = " Lectures"
)

// Lecture is one video of a lecture playlist
type Lecture struct {
	VideoID string
	Title   string
	URL     string
}

// LecturePlaylist is a parsed playlist ready to become a course
type LecturePlaylist struct {
	ID       string
	Title    string
	URL      string
	Lectures []Lecture
}

// CourseContent renders the playlist as the text body of a new course
func (p *LecturePlaylist) CourseContent() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nSource: %s\n\n", p.Title, p.URL)
	for i, l := range p.Lectures {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, l.Title, l.URL)
	}
	return b.String()
}

// PlaylistFetcher lists the videos of a playlist
type PlaylistFetcher interface {
	Lectures(ctx context.Context, playlistID string) ([]Lecture, error)
}

// ytdlpFetcher lists playlist items with the ytdlp library
type ytdlpFetcher struct{}

func (ytdlpFetcher) Lectures(ctx context.Context, playlistID string) ([]Lecture, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	lectures := make([]Lecture, 0, len(items))
	for _, it := range items {
		lectures = append(lectures, Lecture{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return lectures, nil
}

// LectureImporter turns YouTube playlists into course material
type LectureImporter struct {
	timeout time.Duration
	fetcher PlaylistFetcher
}

// NewLectureImporter creates an importer backed by ytdlp
func NewLectureImporter() *LectureImporter {
	return &LectureImporter{
		timeout: DefaultImportTimeout,
		fetcher: ytdlpFetcher{},
	}
}

// NewLectureImporterWithFetcher creates an importer with a custom fetcher
func NewLectureImporterWithFetcher(fetcher PlaylistFetcher) *LectureImporter {
	return &LectureImporter{
		timeout: DefaultImportTimeout,
		fetcher: fetcher,
	}
}

// SetTimeout sets the timeout for import operations
func (l *LectureImporter) SetTimeout(timeout time.Duration) {
	l.timeout = timeout
}

// Import fetches the lectures of a playlist URL
func (l *LectureImporter) Import(ctx context.Context, url string) (*LecturePlaylist, error) {
	url = strings.TrimSpace(url)
	if !IsPlaylistURL(url) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	lectures, err := l.fetcher.Lectures(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(lectures) == 0 {
		return nil, fmt.Errorf("playlist %s has no videos", playlistID)
	}

	return &LecturePlaylist{
		ID:       playlistID,
		Title:    playlistTitle(lectures),
		URL:      fmt.Sprintf(YouTubePlaylistURLTemplate, playlistID),
		Lectures: lectures,
	}, nil
}

// IsPlaylistURL reports whether url carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID returns the value of the list parameter
func ExtractPlaylistID(url string) string {
	parts := strings.SplitN(url, PlaylistParam, 2)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	return strings.TrimSpace(id)
}

// playlistTitle names the course after the common prefix of the first two
// lecture titles, or the first title
func playlistTitle(lectures []Lecture) string {
	if len(lectures) == 0 {
		return DefaultPlaylistName
	}
	if len(lectures) > 1 {
		prefix := strings.TrimSpace(commonPrefix(lectures[0].Title, lectures[1].Title))
		prefix = strings.TrimRight(prefix, "-:|#0123456789 ")
		if len(prefix) > MinPrefixLength {
			return prefix + LecturesSuffix
		}
	}
	return lectures[0].Title + LecturesSuffix
}

func commonPrefix(s1, s2 string) string {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:n]
}
