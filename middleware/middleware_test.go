package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/mintstake/base/ctx"
)

type middlewareSuite struct {
	suite.Suite

	e *echo.Echo
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	s.e = echo.New()
	m := InitMiddleware()
	s.e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-1" },
	}))
	s.e.Use(m.ResponseLogger())
	s.e.Use(m.AddContext())
}

func (s *middlewareSuite) serve(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func (s *middlewareSuite) TestAddContext() {
	var requestId string
	s.e.GET("/ping", func(c echo.Context) error {
		requestId = ctx.RequestId(c.Get("ctx").(ctx.Ctx))
		return c.NoContent(http.StatusNoContent)
	})

	rec := s.serve(http.MethodGet, "/ping")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("req-1", requestId)
	s.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func (s *middlewareSuite) TestResponseLoggerHandlesErrors() {
	s.e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "boom")
	})

	rec := s.serve(http.MethodGet, "/boom")
	s.Equal(http.StatusTeapot, rec.Code)
}

func (s *middlewareSuite) TestIsValidAddress() {
	s.e.GET("/accounts/:account", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, IsValidAddress("account"))

	rec := s.serve(http.MethodGet, "/accounts/0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.serve(http.MethodGet, "/accounts/0x1234")
	s.Equal(http.StatusBadRequest, rec.Code)
}
