//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"food-preorder/internal/domain/order"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderQueries struct {
	mock.Mock
}

func (m *MockOrderQueries) CreateOrder(ctx context.Context, d db.DBTX, arg db.CreateOrderParams) (db.Orders, error) {
	args := m.Called(ctx, d, arg)
	return args.Get(0).(db.Orders), args.Error(1)
}

func (m *MockOrderQueries) CreateOrderItem(ctx context.Context, d db.DBTX, arg db.CreateOrderItemParams) error {
	args := m.Called(ctx, d, arg)
	return args.Error(0)
}

func (m *MockOrderQueries) GetOrderByID(ctx context.Context, d db.DBTX, id uuid.UUID) (db.OrderDetailRow, error) {
	args := m.Called(ctx, d, id)
	return args.Get(0).(db.OrderDetailRow), args.Error(1)
}

func (m *MockOrderQueries) GetOrderForUpdate(ctx context.Context, d db.DBTX, id uuid.UUID) (db.Orders, error) {
	args := m.Called(ctx, d, id)
	return args.Get(0).(db.Orders), args.Error(1)
}

func (m *MockOrderQueries) ListOrdersByUserID(ctx context.Context, d db.DBTX, userID uuid.UUID) ([]db.OrderDetailRow, error) {
	args := m.Called(ctx, d, userID)
	return args.Get(0).([]db.OrderDetailRow), args.Error(1)
}

func (m *MockOrderQueries) ListAllOrders(ctx context.Context, d db.DBTX) ([]db.OrderDetailRow, error) {
	args := m.Called(ctx, d)
	return args.Get(0).([]db.OrderDetailRow), args.Error(1)
}

func (m *MockOrderQueries) ListActiveOrdersForDate(ctx context.Context, d db.DBTX, date pgtype.Date) ([]db.OrderDetailRow, error) {
	args := m.Called(ctx, d, date)
	return args.Get(0).([]db.OrderDetailRow), args.Error(1)
}

func (m *MockOrderQueries) ListOrderItemsByOrderID(ctx context.Context, d db.DBTX, orderID uuid.UUID) ([]db.OrderItems, error) {
	args := m.Called(ctx, d, orderID)
	return args.Get(0).([]db.OrderItems), args.Error(1)
}

func (m *MockOrderQueries) ListOrderItemsByOrderIDs(ctx context.Context, d db.DBTX, orderIDs []uuid.UUID) ([]db.OrderItems, error) {
	args := m.Called(ctx, d, orderIDs)
	return args.Get(0).([]db.OrderItems), args.Error(1)
}

func (m *MockOrderQueries) UpdateOrderStatus(ctx context.Context, d db.DBTX, arg db.UpdateOrderStatusParams) (int64, error) {
	args := m.Called(ctx, d, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderQueries) MarkOrderCancelled(ctx context.Context, d db.DBTX, arg db.MarkOrderCancelledParams) error {
	args := m.Called(ctx, d, arg)
	return args.Error(0)
}

// db.DBTX implementation so the mock can stand in for the pool
func (m *MockOrderQueries) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockOrderQueries) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockOrderQueries) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateStatus(t *testing.T) {
	testOrderID := uuid.New()

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantError bool
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:     "success",
			affected: 1,
		},
		{
			name:      "order not found",
			affected:  0,
			wantError: true,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOrderQueries)
			mockQueries.On("UpdateOrderStatus", mock.Anything, mock.Anything, db.UpdateOrderStatusParams{
				ID:     testOrderID,
				Status: "ready",
			}).Return(tt.affected, tt.mockError)

			repo := &OrderRepository{queries: mockQueries, db: mockQueries}

			err := repo.UpdateStatus(context.Background(), testOrderID, order.StatusReady)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestMarkCancelled(t *testing.T) {
	testOrderID := uuid.New()
	cancelledAt := time.Date(2025, 6, 1, 11, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOrderQueries)
			mockQueries.On("MarkOrderCancelled", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockError)

			repo := &OrderRepository{queries: mockQueries, db: mockQueries}

			err := repo.MarkCancelled(context.Background(), mockQueries, testOrderID, cancelledAt)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
