package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/mintstake/base/ctx"
)

type usecase struct {
	err error
}

func (u usecase) Check(context ctx.Ctx) error {
	return u.err
}

func check(uc usecase) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestCheck(t *testing.T) {
	req := require.New(t)

	rec := check(usecase{})
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"healthy":"ok"`)

	rec = check(usecase{errors.New("redis down")})
	req.Equal(http.StatusServiceUnavailable, rec.Code)
	req.Contains(rec.Body.String(), "redis down")
}
