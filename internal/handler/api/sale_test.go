//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/handler/api"
	resdto "stand-ledger/internal/handler/dto/response"
	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/queries"
	"stand-ledger/internal/usecase/shared"
	"stand-ledger/tests/common/builder"
	"stand-ledger/tests/common/httptest"
	"stand-ledger/tests/common/testutil"
	commandsmock "stand-ledger/tests/mock/commands"
	queriesmock "stand-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SaleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSaleCommands
	mockQueries  *queriesmock.MockSaleQueries
	handler      *api.SaleHandler
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSaleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSaleQueries(s.mockCtrl)
	s.handler = api.NewSaleHandler(s.mockCommands, s.mockQueries)

	auth := newTestAuth(s.mockCtrl)
	s.router.GET("/api/sales", s.handler.ListSales)
	s.router.POST("/api/sales", s.handler.RecordSales)
	s.router.GET("/api/summary", s.handler.GetSummary)
	s.router.POST("/api/clear-sales", auth.RequireStaff(), s.handler.ClearSales)
}

func (s *SaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func (s *SaleHandlerTestSuite) TestListSales() {
	s.Run("success: order-derived records carry their origin", func() {
		direct := builder.NewSaleBuilder().BuildView()
		fromOrder := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) { b.ItemName = "Fries" }).BuildView()
		orderID := uuid.New()
		fromOrder.CustomerName = "Amna"
		fromOrder.OrderID = &orderID
		s.mockQueries.EXPECT().ListSales(gomock.Any()).Return([]queries.SaleView{direct, fromOrder}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sales", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("Mint Margarita", body[0]["name"])
		s.Equal(float64(260), body[0]["amount"])
		s.NotContains(body[0], "orderId")
		s.NotContains(body[0], "customerName")
		s.Equal(orderID.String(), body[1]["orderId"])
		s.Equal("Amna", body[1]["customerName"])
	})

	s.Run("success: empty ledger", func() {
		s.mockQueries.EXPECT().ListSales(gomock.Any()).Return([]queries.SaleView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sales", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *SaleHandlerTestSuite) TestRecordSales() {
	url := "/api/sales"
	line := builder.NewSaleBuilder().BuildRequestDTO()
	result := &commands.RecordSalesResult{RecordIDs: []uuid.UUID{uuid.New()}, Total: sale.MustMoney("260")}

	s.Run("success: returns 201 with the record ids", func() {
		s.mockCommands.EXPECT().RecordDirectSales(gomock.Any(), []commands.LineInput{{
			ItemName: "Mint Margarita",
			Quantity: 2,
			Amount:   decimal.RequireFromString("260"),
		}}).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []any{line}, "")

		var body resdto.RecordSalesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("success", body.Status)
		s.Equal([]string{result.RecordIDs[0].String()}, body.RecordIDs)
		s.Equal("260", body.Total.String())
	})

	s.Run("error: empty array", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No sales data provided")
	})

	s.Run("error: body is not an array", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, line, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: non-numeric amount string", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url,
			`[{"item":"Fries","quantity":1,"amount":"abc"}]`, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: negative amount rejected by the core", func() {
		s.mockCommands.EXPECT().RecordDirectSales(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(sale.ErrNegativeAmount, commands.ErrValidation))
		body := testutil.DtoSlice(s.T(), []any{line}, testutil.Field("amount", -5))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: storage failure", func() {
		s.mockCommands.EXPECT().RecordDirectSales(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("disk full"), shared.ErrStorage))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []any{line}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *SaleHandlerTestSuite) TestGetSummary() {
	s.Run("success: snake_case figures", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any()).Return(&queries.SummaryView{
			InitialInvestment:   sale.MustMoney("21000"),
			TotalSales:          sale.MustMoney("260"),
			RemainingInvestment: sale.MustMoney("20740"),
			PercentRecouped:     decimal.RequireFromString("1.24"),
			SalesByItem: []queries.ItemTotalView{
				{Name: "Mint Margarita", Quantity: 2, Amount: sale.MustMoney("260")},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/summary", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"initial_investment": 21000,
			"total_sales": 260,
			"remaining_investment": 20740,
			"percent_recouped": 1.24,
			"sales_by_item": [{"name": "Mint Margarita", "qty": 2, "amount": 260}]
		}`, rec.Body.String())
	})

	s.Run("error: investment unavailable", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), shared.ErrInvestmentUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/summary", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Initial investment is unavailable")
	})
}

func (s *SaleHandlerTestSuite) TestClearSales() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().ClearSalesHistory(gomock.Any(), staff.Member("staff1")).Return(int64(3), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/clear-sales", nil, staffToken)

		var body resdto.ClearSalesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(int64(3), body.Removed)
	})

	s.Run("error: guest", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/clear-sales", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
