package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/mintstake/base/ctx"
	bValidator "github.com/x-xyz/mintstake/base/validator"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/stake"
	mStake "github.com/x-xyz/mintstake/domain/stake/mocks"
)

var (
	mockCtx  = ctx.Background()
	staker   = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	stakeURL = "/stakes/0x939AE6A4C8DFDBB1F7085189574F0A938013952A"
)

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	uc *mStake.UseCase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", mockCtx)
			return next(c)
		}
	})
	s.uc = &mStake.UseCase{}
	New(s.e, s.uc)
}

func (s *handlerSuite) TearDownTest() {
	s.uc.AssertExpectations(s.T())
}

func (s *handlerSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestGet() {
	s.uc.On("Get", mockCtx, staker).Return(&stake.AccountView{Account: staker, BlockNumber: 12}, nil).Once()

	rec := s.serve(http.MethodGet, stakeURL, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"blockNumber":12`)

	rec = s.serve(http.MethodGet, "/stakes/0x1234", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetNotFound() {
	s.uc.On("Get", mockCtx, staker).Return(nil, domain.ErrNotFound).Once()

	rec := s.serve(http.MethodGet, stakeURL, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestIngest() {
	expRaw := &stake.RawAccountSnapshot{
		Account:       staker,
		BlockNumber:   12,
		BlockTime:     1_650_000_000,
		Decimals:      18,
		Quota:         "0x01",
		DailyBaseRate: "0.001",
		Positions:     []stake.RawPosition{{Index: 0, Stake: "0x02", Accrued: "0x03"}},
	}
	s.uc.On("Ingest", mockCtx, expRaw).Return(&stake.AccountSnapshot{Account: staker, BlockNumber: 12}, nil).Once()

	rec := s.serve(http.MethodPut, stakeURL+"/snapshot",
		`{"blockNumber":12,"blockTime":1650000000,"decimals":18,"quota":"0x01","dailyBaseRate":"0.001","positions":[{"index":0,"stake":"0x02","accrued":"0x03"}]}`)
	s.Equal(http.StatusOK, rec.Code)

	// a position without its accrued reward is refused
	rec = s.serve(http.MethodPut, stakeURL+"/snapshot",
		`{"blockNumber":12,"blockTime":1650000000,"quota":"0x01","dailyBaseRate":"0.001","positions":[{"index":0,"stake":"0x02"}]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestCheckClaim() {
	ok := amount.RequireFromString("300", 18)
	s.uc.On("CheckClaim", mockCtx, staker, uint64(1), "300").Return(&ok, nil).Once()
	s.uc.On("CheckClaim", mockCtx, staker, uint64(1), "400").
		Return(nil, domain.Reject(domain.RejectionQuotaExceeded, "claim 400 exceeds the remaining daily quota 300")).Once()

	rec := s.serve(http.MethodPost, stakeURL+"/claims/check", `{"index":1,"amount":"300"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"magnitude":"300000000000000000000"`)

	rec = s.serve(http.MethodPost, stakeURL+"/claims/check", `{"index":1,"amount":"400"}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), `"kind":"quota_exceeded"`)

	rec = s.serve(http.MethodPost, stakeURL+"/claims/check", `{"index":1}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestCheckStake() {
	value := amount.RequireFromString("5", 18)
	s.uc.On("CheckStake", mockCtx, mock.MatchedBy(func(req *stake.StakeRequest) bool {
		return req.Amount == "5" && req.Balance == "10000000000000000000"
	})).Return(&value, nil).Once()

	rec := s.serve(http.MethodPost, "/stakes/check",
		`{"decimals":18,"amount":"5","balance":"10000000000000000000","allowance":"10000000000000000000"}`)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.serve(http.MethodPost, "/stakes/check", `{"decimals":18,"amount":"5","balance":"-1","allowance":"1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}
