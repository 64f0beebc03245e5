package api

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/youruser/idcardapp/internal/cards"
	"github.com/youruser/idcardapp/internal/config"
	imagepkg "github.com/youruser/idcardapp/internal/image"
	"github.com/youruser/idcardapp/internal/util"
	"golang.org/x/exp/slog"
)

//go:embed templates/index.html
var indexHTML []byte

// Response headers set on rendered cards.
const (
	DigestHeader = "X-Card-Digest"
	PhotoHeader  = "X-Card-Photo"
	QRSizeHeader = "X-QR-Size"
)

// Handler serves the web front end. It only adapts requests; all drawing is
// done by the renderer.
type Handler struct {
	renderer *imagepkg.Renderer
	cfg      *config.Config
	client   *http.Client
	logger   *slog.Logger
}

func NewHandler(logger *slog.Logger, renderer *imagepkg.Renderer, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Handler{
		renderer: renderer,
		cfg:      cfg,
		client:   util.NewClient(cfg.AllowPrivatePhotoHosts),
		logger:   logger.With(slog.String("component", "api")),
	}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) form(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// cardHandler renders the submitted fields and returns the card as JPEG.
// Missing or unreadable photos still produce a card.
func (h *Handler) cardHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes+1<<20)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]string{}
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	rec := cards.FromMap(fields)

	card := h.renderer.Render(rec, h.photo(c))

	data, err := imagepkg.EncodeJPEG(card.Image, h.cfg.JPEGQuality)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `inline; filename="id_card.jpg"`)
	c.Header(DigestHeader, imagepkg.Digest(data))
	c.Header(PhotoHeader, card.Photo.String())
	c.Data(http.StatusOK, "image/jpeg", data)
}

// photo returns the uploaded photo, the photo behind photo_url, or nil.
func (h *Handler) photo(c *gin.Context) *imagepkg.Photo {
	limit := h.cfg.MaxUploadBytes

	fh, err := c.FormFile("photo")
	if err == nil && fh.Filename != "" {
		if fh.Size > limit {
			return imagepkg.PhotoUnreadable(fmt.Errorf("photo is %d bytes, limit %d", fh.Size, limit))
		}
		f, err := fh.Open()
		if err != nil {
			return imagepkg.PhotoUnreadable(err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return imagepkg.PhotoUnreadable(err)
		}
		return imagepkg.PhotoBytes(data)
	}

	if raw := c.PostForm("photo_url"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return imagepkg.PhotoUnreadable(fmt.Errorf("unsupported photo url %q", raw))
		}
		h.logger.Debug("fetching photo", slog.String("host", u.Host))
		return imagepkg.DownloadPhoto(c.Request.Context(), h.client, u.String(), h.cfg.PhotoFetchTimeout, limit)
	}
	return nil
}

// qrHandler returns a PNG QR code that encodes a card digest.
func (h *Handler) qrHandler(c *gin.Context) {
	size := 256
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v >= 64 && v <= 1024 {
		size = v
	}
	qr, err := imagepkg.VerificationQR(c.Query("digest"), size)
	if errors.Is(err, imagepkg.ErrInvalidDigest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header(QRSizeHeader, strconv.Itoa(qr.Size))
	c.Data(http.StatusOK, "image/png", qr.PNG)
}
