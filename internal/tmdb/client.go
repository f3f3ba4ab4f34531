package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/youruser/posterapp/internal/util"
	"go.uber.org/zap"
)

const (
	DefaultAPIBaseURL   = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/original"
	DefaultTimeout      = 12 * time.Second
)

// Config holds the TMDB endpoints and the read access token.
type Config struct {
	APIBaseURL   string
	ImageBaseURL string
	Token        string
	Timeout      time.Duration
}

// Client talks to the TMDB v3 API and image CDN.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// New returns a client. Empty config fields take the package defaults.
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// FetchMovieImages lists the posters and backdrops of a movie. When
// languages is non-empty only images in those languages are requested;
// "null" selects images without text.
func (c *Client) FetchMovieImages(ctx context.Context, movieID int, languages []string) (*MovieImages, error) {
	u := fmt.Sprintf("%s/movie/%d/images", strings.TrimRight(c.cfg.APIBaseURL, "/"), movieID)
	if len(languages) > 0 {
		q := url.Values{}
		q.Set("include_image_language", strings.Join(languages, ","))
		u += "?" + q.Encode()
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+c.cfg.Token)

	c.log.Info("fetching movie images", zap.Int("movie_id", movieID), zap.Strings("languages", languages))
	body, err := util.GetBytes(ctx, c.http, u, header)
	if err != nil {
		c.log.Error("fetching movie images failed", zap.Int("movie_id", movieID), zap.Error(err))
		return nil, fmt.Errorf("fetching images for movie %d: %w", movieID, err)
	}

	var images MovieImages
	if err := json.Unmarshal(body, &images); err != nil {
		return nil, fmt.Errorf("decoding images for movie %d: %w", movieID, err)
	}
	return &images, nil
}

// DownloadImage fetches remotePath (e.g. "/abc.jpg") from the image CDN and
// writes it to localPath.
func (c *Client) DownloadImage(ctx context.Context, remotePath, localPath string) error {
	u := strings.TrimRight(c.cfg.ImageBaseURL, "/") + remotePath
	body, err := util.GetBytes(ctx, c.http, u, nil)
	if err != nil {
		c.log.Error("downloading image failed", zap.String("url", u), zap.String("path", localPath), zap.Error(err))
		return fmt.Errorf("downloading %s: %w", u, err)
	}
	if err := os.WriteFile(localPath, body, 0o644); err != nil {
		c.log.Error("writing image failed", zap.String("path", localPath), zap.Error(err))
		return fmt.Errorf("writing %s: %w", localPath, err)
	}
	c.log.Debug("downloaded image", zap.String("url", u), zap.String("path", localPath), zap.Int("bytes", len(body)))
	return nil
}
