//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/handler/api"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/tests/common/builder"
	"delivery-admin/tests/common/httptest"
	"delivery-admin/tests/common/testutil"
	commandsmock "delivery-admin/tests/mock/commands"
	queriesmock "delivery-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reservations", s.handler.List)
	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PUT("/reservations/:id", s.handler.Update)
	s.router.DELETE("/reservations/:id", s.handler.Delete)
	s.router.GET("/customers/:id/reservations", s.handler.ListByCustomer)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created with the joined view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.ReservationInput{
			CustomerID:        1,
			DeliveryAddressID: 5,
			DeliverySlotID:    7,
			ReservationDate:   "2025-03-11",
			ReservationTime:   "10:30",
			Status:            "CONFIRMED",
		}).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("09:00", body.WindowStart)
		s.Equal(int64(1), body.Version)
	})

	missing := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "customerId", mutate: testutil.Field("customerId", nil)},
		{name: "deliveryAddressId", mutate: testutil.Field("deliveryAddressId", nil)},
		{name: "deliverySlotId", mutate: testutil.Field("deliverySlotId", nil)},
		{name: "reservationDate", mutate: testutil.Field("reservationDate", nil)},
		{name: "reservationTime", mutate: testutil.Field("reservationTime", nil)},
	}
	for _, tc := range missing {
		s.Run("error: 400 Bad Request when "+tc.name+" is missing", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request")
		})
	}

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "slot is full", err: reservation.ErrNoCapacity, expectCode: http.StatusConflict, expectMsg: reservation.ErrNoCapacity.Error()},
		{name: "unknown slot", err: commands.ErrSlotNotFound, expectCode: http.StatusNotFound, expectMsg: commands.ErrSlotNotFound.Error()},
		{name: "unknown address", err: commands.ErrAddressNotFound, expectCode: http.StatusNotFound, expectMsg: commands.ErrAddressNotFound.Error()},
		{
			name:       "slot outside the address zone",
			err:        commands.NewValidationError(reservation.ErrSlotOutsideZone),
			expectCode: http.StatusBadRequest,
			expectMsg:  "invalid request",
		},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: validation detail names the broken rule", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), commands.NewValidationError(reservation.ErrTimeOutsideWindow)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp struct {
			Detail string `json:"detail"`
		}
		s.Require().Equal(http.StatusBadRequest, rec.Code)
		testutil.DecodeJSON(s.T(), rec.Body.Bytes(), &resp)
		s.Equal(reservation.ErrTimeOutsideWindow.Error(), resp.Detail)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	url := "/reservations/11"
	version := int64(1)
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()
	reqBody.Version = &version

	s.Run("success: passes the expected version through", func() {
		view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Version = 2 }).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(11), gomock.Cond(func(x any) bool {
			in, ok := x.(commands.ReservationInput)
			return ok && in.Version != nil && *in.Version == 1
		})).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(11)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2), body.Version)
	})

	s.Run("error: 409 Conflict on a stale version", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(11), gomock.Any()).Return(commands.ErrReservationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrReservationConflict.Error())
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(11), gomock.Any()).Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.ErrReservationNotFound.Error())
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	first := builder.NewReservationBuilder().BuildView()
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 10 }).BuildView()

	s.Run("success: first page with next cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*int64)(nil), (*queries.Cursor)(nil), 20).
			Return([]*queries.ReservationView{first, second}, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var body resdto.PageResponse[queries.ReservationView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: cursor, limit and customer filter are forwarded", func() {
		customerID := int64(1)
		s.mockQueries.EXPECT().List(gomock.Any(), &customerID, &queries.Cursor{After: "abc"}, queries.MaxListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?customerId=1&after=abc&limit=5000", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("success: nested customer route", func() {
		customerID := int64(1)
		s.mockQueries.EXPECT().List(gomock.Any(), &customerID, (*queries.Cursor)(nil), 5).
			Return([]*queries.ReservationView{first}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/1/reservations?limit=5", nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=garbage", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, queries.ErrInvalidCursor.Error())
	})

	s.Run("error: 400 Bad Request for a non-numeric customerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?customerId=me", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request")
	})
}

// ================================================================================
// TestGet / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/404", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, queries.ErrReservationNotFound.Error())
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/11", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(11)).Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/11", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.ErrReservationNotFound.Error())
	})
}
