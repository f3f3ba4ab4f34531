package poster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/tmdb"
	"github.com/youruser/posterapp/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source lists and downloads a movie's images. *tmdb.Client implements it.
type Source interface {
	FetchMovieImages(ctx context.Context, movieID int, languages []string) (*tmdb.MovieImages, error)
	DownloadImage(ctx context.Context, remotePath, localPath string) error
}

// Options controls where a run reads and writes files.
type Options struct {
	OriginalsDir string
	PostersDir   string
	// BlurPath is the gradient layer blended over every source image.
	BlurPath string
	// SaveOriginal keeps downloads in OriginalsDir instead of deleting them.
	SaveOriginal bool
	Workers      int
	Filter       tmdb.FilterOptions
}

// Generator turns every poster and backdrop of a movie into a cinéfil poster.
type Generator struct {
	src  Source
	tpl  *imagepkg.Template
	opts Options
	log  *zap.Logger
}

func NewGenerator(src Source, tpl *imagepkg.Template, opts Options, log *zap.Logger) *Generator {
	if opts.OriginalsDir == "" {
		opts.OriginalsDir = "originals"
	}
	if opts.PostersDir == "" {
		opts.PostersDir = "posters"
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{src: src, tpl: tpl, opts: opts, log: log}
}

type job struct {
	label string
	index int
	image tmdb.Image
}

// Generate renders one poster per source image of movieID. A failed image
// is recorded in its Result and does not stop the others; only a failed
// image listing fails the run. Outputs go under a per-movie directory and
// downloads under a per-run temporary directory, so runs for different
// movies, or concurrent runs for the same movie, never share a file.
func (g *Generator) Generate(ctx context.Context, title string, movieID int, languages []string) ([]Result, error) {
	movieDir := strconv.Itoa(movieID)
	dirs := []string{filepath.Join(g.opts.PostersDir, movieDir)}
	if g.opts.SaveOriginal {
		dirs = append(dirs, filepath.Join(g.opts.OriginalsDir, movieDir))
	}
	if err := util.EnsureDirs(dirs...); err != nil {
		return nil, fmt.Errorf("creating output directories: %w", err)
	}

	images, err := g.src.FetchMovieImages(ctx, movieID, languages)
	if err != nil {
		g.log.Error("failed to fetch movie images", zap.Int("movie_id", movieID), zap.Error(err))
		return nil, err
	}
	if images == nil {
		return nil, errors.New("no image listing returned")
	}

	var jobs []job
	jobs = append(jobs, g.jobs("poster", images.Posters)...)
	jobs = append(jobs, g.jobs("backdrop", images.Backdrops)...)

	downloads, err := os.MkdirTemp(g.opts.PostersDir, ".downloads-")
	if err != nil {
		return nil, fmt.Errorf("creating download directory: %w", err)
	}
	defer os.RemoveAll(downloads)

	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i, j := range jobs {
		eg.Go(func() error {
			results[i] = g.process(ctx, title, movieID, downloads, j)
			return nil
		})
	}
	eg.Wait()
	return results, nil
}

func (g *Generator) jobs(label string, images []tmdb.Image) []job {
	images = tmdb.Filter(images, g.opts.Filter)
	if len(images) == 0 {
		g.log.Info("no images available", zap.String("label", label))
		return nil
	}
	g.log.Info("found images", zap.String("label", label), zap.Int("count", len(images)))

	out := make([]job, len(images))
	for i, img := range images {
		out[i] = job{label: label, index: i + 1, image: img}
	}
	return out
}

// Paths returns where the kept original and the final poster of one image
// of movieID go.
func (g *Generator) Paths(movieID int, label string, index int) (original, output string) {
	movieDir := strconv.Itoa(movieID)
	original = filepath.Join(g.opts.OriginalsDir, movieDir, fmt.Sprintf("original_%s_%d.jpg", label, index))
	output = filepath.Join(g.opts.PostersDir, movieDir, fmt.Sprintf("final_movie_%s_%d.png", label, index))
	return original, output
}

func (g *Generator) process(ctx context.Context, title string, movieID int, downloads string, j job) Result {
	res := Result{Label: j.label, Index: j.index, Source: j.image.FilePath}
	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res
	}

	original, output := g.Paths(movieID, j.label, j.index)
	download := filepath.Join(downloads, fmt.Sprintf("temp_%s_%d.jpg", j.label, j.index))
	if err := g.src.DownloadImage(ctx, j.image.FilePath, download); err != nil {
		g.log.Warn("skipping image", zap.String("source", j.image.FilePath), zap.Error(err))
		res.Error = err.Error()
		return res
	}
	if g.opts.SaveOriginal {
		if err := keepOriginal(download, original); err != nil {
			g.log.Warn("keeping original failed", zap.String("path", original), zap.Error(err))
		}
	}

	g.log.Info("creating poster", zap.String("output", output))
	if err := imagepkg.ComposePoster(title, download, g.opts.BlurPath, output, g.tpl); err != nil {
		g.log.Error("poster render failed", zap.String("output", output), zap.Error(err))
		res.Error = err.Error()
		return res
	}
	res.Output = output
	res.Success = true
	return res
}

// keepOriginal copies a finished download into the originals directory.
func keepOriginal(download, original string) error {
	data, err := os.ReadFile(download)
	if err != nil {
		return err
	}
	return imagepkg.WriteFileAtomic(original, data)
}
