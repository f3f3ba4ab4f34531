package api

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/poster"
	"go.uber.org/zap"
)

// Handler serves poster renders backed by a TMDB source.
type Handler struct {
	src      poster.Source
	gen      *poster.Generator
	tpl      *imagepkg.Template
	blurPath string
	log      *zap.Logger
}

func NewHandler(src poster.Source, gen *poster.Generator, tpl *imagepkg.Template, blurPath string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{src: src, gen: gen, tpl: tpl, blurPath: blurPath, log: log}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// renderPoster downloads one TMDB image and returns the finished poster.
func (h *Handler) renderPoster(c *gin.Context) {
	var req struct {
		Title    string `json:"title" binding:"required"`
		FilePath string `json:"file_path" binding:"required"`
		Format   string `json:"format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Format != "" && req.Format != "png" && req.Format != "webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be png or webp"})
		return
	}

	dir, err := os.MkdirTemp("", "poster-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer os.RemoveAll(dir)

	local := filepath.Join(dir, "source.jpg")
	if err := h.src.DownloadImage(c.Request.Context(), req.FilePath, local); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	source, err := imagepkg.OpenImage(local)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	blur, err := imagepkg.OpenImage(h.blurPath)
	if err != nil {
		h.log.Error("blur layer unavailable", zap.String("path", h.blurPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	img, err := imagepkg.RenderPoster(req.Title, source, blur, h.tpl)
	if err != nil {
		h.log.Error("poster render failed", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	contentType := "image/png"
	if req.Format == "webp" {
		contentType = "image/webp"
		err = imagepkg.EncodeWebP(buf, img)
	} else {
		err = imagepkg.EncodePNG(buf, img)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// generatePosters renders every poster and backdrop of a movie to disk.
func (h *Handler) generatePosters(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}
	var req struct {
		Title     string   `json:"title" binding:"required"`
		Languages []string `json:"languages"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.gen.Generate(c.Request.Context(), req.Title, id, req.Languages)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}

// movieQR returns a PNG QR code linking to the movie's TMDB page.
func (h *Handler) movieQR(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil && v > 0 && v <= 2048 {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(imagepkg.MoviePageURL(id), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
