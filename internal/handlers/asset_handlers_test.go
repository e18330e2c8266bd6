package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stonestore/internal/assets"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AssetHandlersTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	staticDir string
}

func (s *AssetHandlersTestSuite) SetupTest() {
	s.echo = echo.New()
	s.staticDir = s.T().TempDir()
	require.NoError(s.T(), os.MkdirAll(filepath.Join(s.staticDir, "css"), 0o755))
	require.NoError(s.T(), os.WriteFile(filepath.Join(s.staticDir, "css", "site.css"), []byte("body{}"), 0o644))
}

func TestAssetHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlersTestSuite))
}

func (s *AssetHandlersTestSuite) serve(h *AssetHandlers, name string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/static/"+name, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues(name)
	return rec, h.Static(c)
}

func (s *AssetHandlersTestSuite) TestStatic_ExistingFile() {
	rec, err := s.serve(NewAssetHandlers(s.staticDir, nil), "css/site.css")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "body{}", rec.Body.String())
}

func (s *AssetHandlersTestSuite) TestStatic_MissingImageGetsBuiltInPlaceholder() {
	rec, err := s.serve(NewAssetHandlers(s.staticDir, nil), "missing.png")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(s.T(), assets.PlaceholderJPEG, rec.Body.Bytes())
}

func (s *AssetHandlersTestSuite) TestStatic_MissingImagePrefersPlaceholderOnDisk() {
	require.NoError(s.T(), os.MkdirAll(filepath.Join(s.staticDir, "images"), 0o755))
	require.NoError(s.T(), os.WriteFile(filepath.Join(s.staticDir, "images", "placeholder.jpg"), []byte("disk placeholder"), 0o644))

	rec, err := s.serve(NewAssetHandlers(s.staticDir, nil), "images/product-7.jpg")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "disk placeholder", rec.Body.String())
}

func (s *AssetHandlersTestSuite) TestStatic_MissingNonImageIsNotFound() {
	_, err := s.serve(NewAssetHandlers(s.staticDir, nil), "missing.txt")
	assert.Equal(s.T(), echo.ErrNotFound, err)
}

func (s *AssetHandlersTestSuite) TestStatic_DirectoryIsNotFound() {
	_, err := s.serve(NewAssetHandlers(s.staticDir, nil), "css")
	assert.Equal(s.T(), echo.ErrNotFound, err)
}

func (s *AssetHandlersTestSuite) TestStatic_MediaStoreHit() {
	media := new(MockMediaStore)
	media.On("Open", mock.Anything, "images/banner.png").Return(&assets.MediaObject{
		Body:        io.NopCloser(strings.NewReader("bucket bytes")),
		ContentType: "image/png",
		Size:        12,
		ModTime:     time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC),
	}, nil)

	rec, err := s.serve(NewAssetHandlers(s.staticDir, media), "images/banner.png")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(s.T(), "bucket bytes", rec.Body.String())
	assert.Equal(s.T(), "12", rec.Header().Get(echo.HeaderContentLength))
	assert.Equal(s.T(), "Mon, 04 May 2026 10:30:00 GMT", rec.Header().Get(echo.HeaderLastModified))
	media.AssertExpectations(s.T())
}

func (s *AssetHandlersTestSuite) TestStatic_MediaStoreHitWithoutMetadata() {
	media := new(MockMediaStore)
	media.On("Open", mock.Anything, "docs/notes.bin").Return(&assets.MediaObject{
		Body: io.NopCloser(strings.NewReader("raw")),
	}, nil)

	rec, err := s.serve(NewAssetHandlers(s.staticDir, media), "docs/notes.bin")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), echo.MIMEOctetStream, rec.Header().Get(echo.HeaderContentType))
	assert.Empty(s.T(), rec.Header().Get(echo.HeaderLastModified))
	assert.Equal(s.T(), "raw", rec.Body.String())
	media.AssertExpectations(s.T())
}

func (s *AssetHandlersTestSuite) TestStatic_MediaStoreMissFallsBackToPlaceholder() {
	media := new(MockMediaStore)
	media.On("Open", mock.Anything, "images/gone.gif").Return(nil, assets.ErrMediaNotFound)

	rec, err := s.serve(NewAssetHandlers(s.staticDir, media), "images/gone.gif")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), assets.PlaceholderJPEG, rec.Body.Bytes())
	media.AssertExpectations(s.T())
}

func (s *AssetHandlersTestSuite) TestStatic_MediaStoreErrorStillServesPlaceholder() {
	media := new(MockMediaStore)
	media.On("Open", mock.Anything, "images/a.jpeg").Return(nil, errors.New("dial tcp: connection refused"))

	rec, err := s.serve(NewAssetHandlers(s.staticDir, media), "images/a.jpeg")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	media.AssertExpectations(s.T())
}

func (s *AssetHandlersTestSuite) TestStatic_MediaStoreMissNonImage() {
	media := new(MockMediaStore)
	media.On("Open", mock.Anything, "js/app.js").Return(nil, assets.ErrMediaNotFound)

	_, err := s.serve(NewAssetHandlers(s.staticDir, media), "js/app.js")
	assert.Equal(s.T(), echo.ErrNotFound, err)
}

func (s *AssetHandlersTestSuite) TestFavicon_RedirectsToPlaceholder() {
	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	rec := httptest.NewRecorder()

	require.NoError(s.T(), NewAssetHandlers(s.staticDir, nil).Favicon(s.echo.NewContext(req, rec)))
	assert.Equal(s.T(), http.StatusFound, rec.Code)
	assert.Equal(s.T(), "/static/images/placeholder.jpg", rec.Header().Get(echo.HeaderLocation))
}
