package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/youruser/posterapp/internal/api"
	"github.com/youruser/posterapp/internal/config"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/logger"
	"github.com/youruser/posterapp/internal/poster"
	"github.com/youruser/posterapp/internal/tmdb"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	addr := flag.String("addr", "", "Listen address (default :8080, or $PORT)")
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
			log.Fatal("loading config", zap.Error(err))
		}
	}
	listen := *addr
	if listen == "" && os.Getenv("PORT") != "" {
		listen = ":" + os.Getenv("PORT")
	}
	cfg.Resolve(config.Flags{ListenAddr: listen})
	if cfg.APIToken == "" {
		log.Warn("no TMDB token configured; image listings will fail", zap.String("env", config.TokenEnv))
	}

	client := tmdb.New(tmdb.Config{
		APIBaseURL:   cfg.APIBaseURL,
		ImageBaseURL: cfg.ImageBaseURL,
		Token:        cfg.APIToken,
	}, log)
	tpl := imagepkg.DefaultTemplate(cfg.FontsDir)
	gen := poster.NewGenerator(client, tpl, poster.Options{
		OriginalsDir: cfg.OriginalsDir,
		PostersDir:   cfg.PostersDir,
		BlurPath:     cfg.BlurPath,
		SaveOriginal: cfg.SaveOriginal,
		Workers:      cfg.Workers,
	}, log)

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(client, gen, tpl, cfg.BlurPath, log))

	log.Info("starting server", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
