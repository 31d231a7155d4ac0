//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"delivery-admin/internal/domain/customer"
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

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
	handler      *api.CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.handler = api.NewCustomerHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/customers", s.handler.List)
	s.router.POST("/customers", s.handler.Create)
	s.router.GET("/customers/:id", s.handler.Get)
	s.router.PUT("/customers/:id", s.handler.Update)
	s.router.DELETE("/customers/:id", s.handler.Delete)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

type testCaseCustomer struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CustomerHandlerTestSuite) TestCreate() {
	url := "/customers"

	reqBody := builder.NewCustomerBuilder().BuildRequestDTO()
	returnView := builder.NewCustomerBuilder().BuildView()

	missing := []testCaseCustomer{
		{name: "missing field: fullName (required)", mutate: testutil.Field("fullName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customerType (required)", mutate: testutil.Field("customerType", nil), expectCode: http.StatusBadRequest},
		{name: "optional field: phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusCreated},
	}

	malformed := []testCaseCustomer{
		{name: "wrong type: fullName as number", mutate: testutil.Field("fullName", 12), expectCode: http.StatusBadRequest},
		{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the stored customer", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CustomerInput{
			FullName:     reqBody.FullName,
			Email:        reqBody.Email,
			Phone:        reqBody.Phone,
			CustomerType: reqBody.CustomerType,
		}).Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body queries.CustomerView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Email, body.Email)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		for _, group := range [][]testCaseCustomer{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(returnView.ID, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: 400 Bad Request lists every broken rule", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), commands.NewValidationError(customer.ErrInvalidFullName, customer.ErrInvalidEmail)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorDetail(s.T(), rec, customer.ErrInvalidFullName.Error(), customer.ErrInvalidEmail.Error())
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrEmailTaken.Error())
	})

	s.Run("error: 500 Internal Server Error on unknown failures", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal server error")
		s.NotContains(rec.Body.String(), "boom")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *CustomerHandlerTestSuite) TestGet() {
	view := builder.NewCustomerBuilder().BuildView()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/1", nil, "")

		var body queries.CustomerView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.FullName, body.FullName)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, queries.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/99", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, queries.ErrCustomerNotFound.Error())
	})

	for _, id := range []string{"abc", "0", "-3"} {
		s.Run("error: 400 Bad Request for id "+id, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+id, nil, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request")
		})
	}
}

func (s *CustomerHandlerTestSuite) TestList() {
	view := builder.NewCustomerBuilder().BuildView()

	s.Run("success: returns every customer", func() {
		other := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.ID = 2
			b.Email = "luis@example.com"
		}).BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.CustomerView{view, other}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers", nil, "")

		var body resdto.ListResponse[queries.CustomerView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("success: email filter uses the exact lookup", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), "ANA@example.com").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers?email=ANA@example.com", nil, "")

		var body resdto.ListResponse[queries.CustomerView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.ID, body.Items[0].ID)
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *CustomerHandlerTestSuite) TestUpdate() {
	reqBody := builder.NewCustomerBuilder().WithFullName("Ana María Pérez").BuildRequestDTO()
	view := builder.NewCustomerBuilder().WithFullName("Ana María Pérez").BuildView()

	s.Run("success: returns 200 OK with the updated customer", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/1", reqBody, "")

		var body queries.CustomerView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Ana María Pérez", body.FullName)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(commands.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/1", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.ErrCustomerNotFound.Error())
	})
}

func (s *CustomerHandlerTestSuite) TestDelete() {
	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "success: 204 No Content", err: nil, expectCode: http.StatusNoContent},
		{name: "error: 404 Not Found", err: commands.ErrCustomerNotFound, expectCode: http.StatusNotFound},
		{name: "error: 500 on database failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/1", nil, "")

			s.Equal(tc.expectCode, rec.Code)
		})
	}
}
