package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"stonestore/internal/assets"
	"stonestore/internal/presenter"

	"github.com/labstack/echo/v4"
)

// AssetHandlers serves /static from disk, then from the media bucket when one
// is configured. Missing images get the placeholder.
type AssetHandlers struct {
	staticDir string
	media     assets.MediaStore
}

func NewAssetHandlers(staticDir string, media assets.MediaStore) *AssetHandlers {
	return &AssetHandlers{staticDir: staticDir, media: media}
}

func (h *AssetHandlers) Static(c echo.Context) error {
	name := c.Param("*")
	if full, ok := assets.Resolve(h.staticDir, name); ok {
		return c.File(full)
	}

	if h.media != nil && assets.CleanRelative(name) != "" {
		obj, err := h.media.Open(c.Request().Context(), name)
		switch {
		case err == nil:
			defer obj.Body.Close()
			contentType := obj.ContentType
			if contentType == "" {
				contentType = echo.MIMEOctetStream
			}
			h := c.Response().Header()
			if obj.Size > 0 {
				h.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
			}
			if !obj.ModTime.IsZero() {
				h.Set(echo.HeaderLastModified, obj.ModTime.UTC().Format(http.TimeFormat))
			}
			return c.Stream(http.StatusOK, contentType, obj.Body)
		case !errors.Is(err, assets.ErrMediaNotFound):
			log.Printf("WARN: media lookup %s failed: %v", name, err)
		}
	}

	if !assets.IsImage(name) {
		return echo.ErrNotFound
	}
	return h.placeholder(c)
}

func (h *AssetHandlers) placeholder(c echo.Context) error {
	if full, ok := assets.Resolve(h.staticDir, assets.PlaceholderPath); ok {
		return c.File(full)
	}
	return c.Blob(http.StatusOK, "image/jpeg", assets.PlaceholderJPEG)
}

func (h *AssetHandlers) Favicon(c echo.Context) error {
	return c.Redirect(http.StatusFound, presenter.PlaceholderImage)
}
