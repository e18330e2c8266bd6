package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stonestore/internal/models"
	"stonestore/internal/render"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PageHandlersTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	catalog   *MockCatalogService
	webAppDir string
	handlers  *PageHandlers
	now       time.Time
}

func (s *PageHandlersTestSuite) SetupTest() {
	renderer, err := render.NewTemplateRenderer("")
	require.NoError(s.T(), err)

	s.echo = echo.New()
	s.echo.Renderer = renderer
	s.catalog = new(MockCatalogService)

	s.webAppDir = s.T().TempDir()
	require.NoError(s.T(), os.WriteFile(filepath.Join(s.webAppDir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(s.T(), os.WriteFile(filepath.Join(s.webAppDir, "app.js"), []byte("console.log(1)"), 0o644))

	s.now = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	s.handlers = NewPageHandlers(s.catalog, s.webAppDir)
	s.handlers.now = func() time.Time { return s.now }
}

func (s *PageHandlersTestSuite) TearDownTest() {
	s.catalog.AssertExpectations(s.T())
}

func TestPageHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(PageHandlersTestSuite))
}

func (s *PageHandlersTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *PageHandlersTestSuite) webApp(name string) (*httptest.ResponseRecorder, error) {
	c, rec := s.newContext("/webapp/" + name)
	c.SetParamNames("*")
	c.SetParamValues(name)
	return rec, s.handlers.WebApp(c)
}

func (s *PageHandlersTestSuite) TestHome_RendersStorefront() {
	c, rec := s.newContext("/")
	s.catalog.On("HomePage", mock.Anything, s.now).Return(&models.HomePage{
		FeaturedProducts: []models.HomeProductView{{ID: 1, Name: "KPOCCOBKM", PriceFormatted: "$120"}},
		CurrentYear:      2025,
	}, nil)

	require.NoError(s.T(), s.handlers.Home(c))
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(s.T(), rec.Body.String(), "KPOCCOBKM")
	assert.Contains(s.T(), rec.Body.String(), "2025 STONE")
}

func (s *PageHandlersTestSuite) TestHome_DataErrorRendersErrorPage() {
	c, rec := s.newContext("/")
	s.catalog.On("HomePage", mock.Anything, s.now).Return(nil, errors.New(`relation "web_widgets" does not exist`))

	require.NoError(s.T(), s.handlers.Home(c))
	assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "Page failed to load")
	assert.Contains(s.T(), rec.Body.String(), "relation &#34;web_widgets&#34; does not exist")
}

func (s *PageHandlersTestSuite) TestAppShell_ServesIndex() {
	c, rec := s.newContext("/cart")

	require.NoError(s.T(), s.handlers.AppShell(c))
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "<html>app</html>", rec.Body.String())
}

func (s *PageHandlersTestSuite) TestWebApp_ExistingFile() {
	rec, err := s.webApp("app.js")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "console.log(1)", rec.Body.String())
}

func (s *PageHandlersTestSuite) TestWebApp_DefaultsToIndex() {
	rec, err := s.webApp("")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "<html>app</html>", rec.Body.String())
}

func (s *PageHandlersTestSuite) TestWebApp_UnknownHTMLFallsBackToIndex() {
	rec, err := s.webApp("unknown.html")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "<html>app</html>", rec.Body.String())
}

func (s *PageHandlersTestSuite) TestWebApp_UnknownAssetIsNotFound() {
	_, err := s.webApp("unknown.js")
	assert.Equal(s.T(), echo.ErrNotFound, err)
}

func (s *PageHandlersTestSuite) TestWebApp_TraversalIsNotFound() {
	secret := filepath.Join(filepath.Dir(s.webAppDir), "secret.js")
	require.NoError(s.T(), os.WriteFile(secret, []byte("secret"), 0o644))
	s.T().Cleanup(func() { os.Remove(secret) })

	_, err := s.webApp("../secret.js")
	assert.Equal(s.T(), echo.ErrNotFound, err)
}

func (s *PageHandlersTestSuite) TestWebApp_MissingBundle() {
	s.handlers = NewPageHandlers(s.catalog, filepath.Join(s.webAppDir, "absent"))

	_, err := s.webApp("unknown.html")
	assert.Equal(s.T(), echo.ErrNotFound, err)
}
