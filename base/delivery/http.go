package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/mintstake/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// RejectionBody is the data of a response to a request a rule turned down
type RejectionBody struct {
	Kind   domain.RejectionKind `json:"kind"`
	Reason string               `json:"reason"`
}

// MakeJsonResp wraps data into a JsonResponse. An error as data overrides
// status: a rejection is 422 with its kind, a missing snapshot 404, a stale
// one 409 and an undecodable one 400.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status, data = errorResp(status, err)
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func errorResp(status int, err error) (int, interface{}) {
	if rej, ok := domain.AsRejection(err); ok {
		if rej.Kind == domain.RejectionAuctionNotFound {
			return http.StatusNotFound, RejectionBody{rej.Kind, rej.Reason}
		}
		return http.StatusUnprocessableEntity, RejectionBody{rej.Kind, rej.Reason}
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrStaleSnapshot):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidSnapshot):
		status = http.StatusBadRequest
	}
	return status, err.Error()
}
