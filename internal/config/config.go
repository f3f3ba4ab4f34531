package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// TokenEnv names the variable holding the TMDB read access token.
const TokenEnv = "TMDB_API_TOKEN"

// Config holds paths, endpoints and run settings.
type Config struct {
	// TMDB
	APIBaseURL   string `json:"api_base_url"`
	ImageBaseURL string `json:"image_base_url"`
	APIToken     string `json:"api_token"`

	// Assets
	FontsDir string `json:"fonts_dir"`
	BlurPath string `json:"blur_path"`

	// Output
	OriginalsDir string `json:"originals_dir"`
	PostersDir   string `json:"posters_dir"`
	SaveOriginal bool   `json:"save_original"`

	Languages  []string `json:"languages"`
	Workers    int      `json:"workers"`
	ListenAddr string   `json:"listen_addr"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads variables from the given dotenv files into the process
// environment. Missing files are skipped; variables already set win.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	FontsDir     string
	BlurPath     string
	OriginalsDir string
	PostersDir   string
	Languages    string
	Workers      int
	SaveOriginal bool
	ListenAddr   string
}

// Resolve applies flags over the file values and fills the remaining empty
// fields with defaults. The token falls back to TMDB_API_TOKEN.
func (c *Config) Resolve(flags Flags) {
	if flags.FontsDir != "" {
		c.FontsDir = flags.FontsDir
	}
	if flags.BlurPath != "" {
		c.BlurPath = flags.BlurPath
	}
	if flags.OriginalsDir != "" {
		c.OriginalsDir = flags.OriginalsDir
	}
	if flags.PostersDir != "" {
		c.PostersDir = flags.PostersDir
	}
	if flags.Languages != "" {
		c.Languages = SplitLanguages(flags.Languages)
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.SaveOriginal {
		c.SaveOriginal = true
	}
	if flags.ListenAddr != "" {
		c.ListenAddr = flags.ListenAddr
	}

	if c.APIToken == "" {
		c.APIToken = os.Getenv(TokenEnv)
	}
	if c.FontsDir == "" {
		c.FontsDir = "fonts"
	}
	if c.BlurPath == "" {
		c.BlurPath = "Blur.png"
	}
	if c.OriginalsDir == "" {
		c.OriginalsDir = "originals"
	}
	if c.PostersDir == "" {
		c.PostersDir = "posters"
	}
	if c.Languages == nil {
		c.Languages = []string{"en", "de", "fr", "it", "es", "null"}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
}

// SplitLanguages parses a comma separated language list.
func SplitLanguages(s string) []string {
	out := []string{}
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
