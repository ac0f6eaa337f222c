//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"food-preorder/internal/domain/user"
	"food-preorder/internal/handler/api"
	reqdto "food-preorder/internal/handler/dto/request"
	resdto "food-preorder/internal/handler/dto/response"
	"food-preorder/internal/usecase"
	"food-preorder/internal/usecase/readmodel"
	"food-preorder/tests/common/builder"
	"food-preorder/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) PlaceOrder(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (*readmodel.OrderRM, error) {
	args := m.Called(ctx, req, userID)
	if rm, ok := args.Get(0).(*readmodel.OrderRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) GetOrder(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.OrderRM, error) {
	args := m.Called(ctx, id, actorID, actorRole)
	if rm, ok := args.Get(0).(*readmodel.OrderRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*readmodel.OrderRM, error) {
	args := m.Called(ctx, actorID, actorRole)
	if rms, ok := args.Get(0).([]*readmodel.OrderRM); ok {
		return rms, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*readmodel.OrderRM, error) {
	args := m.Called(ctx, id, status)
	if rm, ok := args.Get(0).(*readmodel.OrderRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) CancelOrder(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.OrderRM, error) {
	args := m.Called(ctx, id, actorID, actorRole)
	if rm, ok := args.Get(0).(*readmodel.OrderRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) PreviewSweep(ctx context.Context) ([]readmodel.SweepCandidateRM, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]readmodel.SweepCandidateRM); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderUseCase) ApplySweep(ctx context.Context) ([]readmodel.SweepResultRM, error) {
	args := m.Called(ctx)
	if rs, ok := args.Get(0).([]readmodel.SweepResultRM); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockUseCase *MockOrderUseCase
	handler     *api.OrderHandler
	userID      uuid.UUID
	userRole    user.Role
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockUseCase = new(MockOrderUseCase)
	s.handler = api.NewOrderHandler(s.mockUseCase)
	s.userID = uuid.New()
	s.userRole = user.RoleCustomer

	// Mock middleware behavior: inject the authenticated user context.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
	})

	s.router.POST("/orders", s.handler.Create)
	s.router.GET("/orders", s.handler.List)
	s.router.GET("/orders/auto-update", s.handler.PreviewSweep)
	s.router.POST("/orders/auto-update", s.handler.ApplySweep)
	s.router.GET("/orders/:id", s.handler.Get)
	s.router.PATCH("/orders/:id", s.handler.UpdateStatus)
	s.router.POST("/orders/:id/cancel", s.handler.Cancel)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockUseCase.AssertExpectations(s.T())
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCreate() {
	url := "/orders"
	reqBody := reqdto.CreateOrderRequest{
		SlotID: uuid.New(),
		Items: []reqdto.OrderItemRequest{
			{MenuItemID: uuid.New(), Quantity: 2},
		},
	}

	s.Run("success: returns 201 Created", func() {
		expected := builder.NewOrderBuilder().BuildReadModel("confirmed")
		s.mockUseCase.On("PlaceOrder", mock.Anything, reqBody, s.userID).
			Return(expected, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.OrderNumber, response.OrderNumber)
		s.Equal(expected.TotalCents, response.TotalCents)
	})

	s.Run("error: 409 Conflict when the slot is full", func() {
		s.mockUseCase.On("PlaceOrder", mock.Anything, reqBody, s.userID).
			Return(nil, usecase.ErrSlotFull).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "fully booked")
	})

	s.Run("error: 409 Conflict when the slot has started", func() {
		s.mockUseCase.On("PlaceOrder", mock.Anything, reqBody, s.userID).
			Return(nil, usecase.ErrSlotExpired).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already started")
	})

	s.Run("error: 400 Bad Request when items are missing", func() {
		invalid := map[string]any{"slot_id": uuid.New().String(), "items": []any{}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, invalid, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	orderID := uuid.New()

	s.Run("success: returns 200 OK", func() {
		expected := builder.NewOrderBuilder().BuildReadModel("confirmed")
		expected.ID = orderID
		s.mockUseCase.On("GetOrder", mock.Anything, orderID, s.userID, s.userRole).
			Return(expected, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "")

		var response readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
	})

	s.Run("error: 403 Forbidden for someone else's order", func() {
		s.mockUseCase.On("GetOrder", mock.Anything, orderID, s.userID, s.userRole).
			Return(nil, usecase.ErrForbidden).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 404 Not Found for unknown order", func() {
		s.mockUseCase.On("GetOrder", mock.Anything, orderID, s.userID, s.userRole).
			Return(nil, usecase.ErrOrderNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID")
	})
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	s.Run("success: returns 200 OK", func() {
		expected := builder.NewOrderBuilder().BuildReadModel("ready")
		expected.ID = orderID
		s.mockUseCase.On("UpdateStatus", mock.Anything, orderID, "ready").
			Return(expected, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateOrderStatusRequest{Status: "ready"}, "")

		var response readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ready", response.Status)
	})

	s.Run("error: 400 Bad Request for an unknown status", func() {
		s.mockUseCase.On("UpdateStatus", mock.Anything, orderID, "shipped").
			Return(nil, usecase.ErrInvalidStatus).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateOrderStatusRequest{Status: "shipped"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order status")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success: returns 200 OK with the cancelled order", func() {
		expected := builder.NewOrderBuilder().BuildReadModel("cancelled")
		expected.ID = orderID
		s.mockUseCase.On("CancelOrder", mock.Anything, orderID, s.userID, s.userRole).
			Return(expected, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 409 Conflict past the deadline", func() {
		s.mockUseCase.On("CancelOrder", mock.Anything, orderID, s.userID, s.userRole).
			Return(nil, usecase.ErrCancelTooLate).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "deadline has passed")
	})

	s.Run("error: 409 Conflict when already cancelled", func() {
		s.mockUseCase.On("CancelOrder", mock.Anything, orderID, s.userID, s.userRole).
			Return(nil, usecase.ErrOrderCancelled).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})
}

func (s *OrderHandlerTestSuite) TestSweep() {
	s.Run("preview: returns candidates with totals", func() {
		suggested := "ready"
		candidates := []readmodel.SweepCandidateRM{
			{
				OrderID:         uuid.New(),
				OrderNumber:     "ORD-2025-0001",
				Status:          "confirmed",
				PickupAt:        time.Now().Add(90 * time.Second),
				MinutesToPickup: 1,
				SuggestedStatus: &suggested,
				Urgency:         "critical",
			},
		}
		s.mockUseCase.On("PreviewSweep", mock.Anything).Return(candidates, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/auto-update", nil, "")

		var response resdto.SweepPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Total)
		s.Equal("critical", response.Candidates[0].Urgency)
	})

	s.Run("apply: returns performed transitions", func() {
		updated := []readmodel.SweepResultRM{
			{OrderID: uuid.New(), OrderNumber: "ORD-2025-0001", FromStatus: "confirmed", ToStatus: "ready"},
		}
		s.mockUseCase.On("ApplySweep", mock.Anything).Return(updated, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/auto-update", nil, "")

		var response resdto.SweepApplyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Total)
		s.Equal("ready", response.Updated[0].ToStatus)
	})
}
