package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/youruser/posterapp/internal/config"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/logger"
	"github.com/youruser/posterapp/internal/movies"
	"github.com/youruser/posterapp/internal/poster"
	"github.com/youruser/posterapp/internal/tmdb"
	"go.uber.org/zap"
)

const (
	defaultTitle   = "The Substance"
	defaultMovieID = 933260
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	title := flag.String("title", defaultTitle, "Title drawn on the posters")
	movieID := flag.Int("id", defaultMovieID, "TMDB movie id")
	movieList := flag.String("movies", "", "CSV movie list (title,id,languages); overrides -title/-id")
	languages := flag.String("languages", "", "Comma separated image languages; \"null\" selects textless images")
	fontsDir := flag.String("fonts", "", "Directory containing Gloock/ and Charmonman/ (default: fonts)")
	blur := flag.String("blur", "", "Blur layer image (default: Blur.png)")
	outDir := flag.String("out", "", "Output directory (default: posters)")
	originalsDir := flag.String("originals", "", "Directory for kept originals (default: originals)")
	saveOriginal := flag.Bool("save-original", false, "Keep downloaded source images")
	workers := flag.Int("workers", 0, "Number of concurrent renders (default: NumCPU)")
	debug := flag.Bool("debug", false, "Development logging")
	flag.Parse()

	log, err := logger.New(*debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := config.LoadEnv(".env.local", ".env"); err != nil {
		log.Warn("loading env files", zap.Error(err))
	}

	var cfg config.Config
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		FontsDir:     *fontsDir,
		BlurPath:     *blur,
		OriginalsDir: *originalsDir,
		PostersDir:   *outDir,
		Languages:    *languages,
		Workers:      *workers,
		SaveOriginal: *saveOriginal,
	})

	list := []movies.Movie{{ID: *movieID, Title: *title}}
	if *movieList != "" {
		list, err = movies.LoadMovies(*movieList)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading movie list: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := tmdb.New(tmdb.Config{
		APIBaseURL:   cfg.APIBaseURL,
		ImageBaseURL: cfg.ImageBaseURL,
		Token:        cfg.APIToken,
	}, log)
	gen := poster.NewGenerator(client, imagepkg.DefaultTemplate(cfg.FontsDir), poster.Options{
		OriginalsDir: cfg.OriginalsDir,
		PostersDir:   cfg.PostersDir,
		BlurPath:     cfg.BlurPath,
		SaveOriginal: cfg.SaveOriginal,
		Workers:      cfg.Workers,
	}, log)

	var manifest string
	failed := 0
	for _, m := range list {
		langs := cfg.Languages
		if len(m.Languages) > 0 {
			langs = m.Languages
		}
		results, err := gen.Generate(ctx, m.Title, m.ID, langs)
		if err != nil {
			log.Error("movie skipped", zap.String("title", m.Title), zap.Int("movie_id", m.ID), zap.Error(err))
			failed++
			continue
		}
		manifest += poster.ExportManifest(m.Title, results)
	}

	manifestPath := filepath.Join(cfg.PostersDir, "manifest.txt")
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		log.Error("writing manifest", zap.String("path", manifestPath), zap.Error(err))
	}
	if failed == len(list) {
		os.Exit(1)
	}
}
