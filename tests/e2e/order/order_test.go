//go:build e2e

package order_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "food-preorder/internal/handler/dto/request"
	resdto "food-preorder/internal/handler/dto/response"
	"food-preorder/internal/usecase/readmodel"
	"food-preorder/tests/common/authtest"
	"food-preorder/tests/common/dbtest"
	"food-preorder/tests/common/httptest"
	"food-preorder/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL = "/api/orders"
	sweepURL  = "/api/orders/auto-update"
	slotsURL  = "/api/slots"
)

type orderSuite struct {
	e2e.SharedSuite

	customerToken string
	staffToken    string
	categoryID    uuid.UUID
	curryID       uuid.UUID
	slotID        uuid.UUID
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.customerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "customer@example.com", "customer")
	s.staffToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", "staff")

	s.categoryID = dbtest.CreateTestCategory(s.T(), s.DB, "Mains")
	s.curryID = dbtest.CreateTestMenuItem(s.T(), s.DB, s.categoryID, "Chicken Curry", 1250)
	s.slotID = dbtest.CreateTestSlot(s.T(), s.DB, time.Now().AddDate(0, 0, 1), "12:00", "12:30", 2)
}

func (s *orderSuite) placeOrder(token string, slotID uuid.UUID) *readmodel.OrderRM {
	body := reqdto.CreateOrderRequest{
		SlotID: slotID,
		Items: []reqdto.OrderItemRequest{
			{MenuItemID: s.curryID, Quantity: 2},
		},
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, body, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var order readmodel.OrderRM
	httptest.DecodeResponseBody(s.T(), w.Body, &order)
	return &order
}

func (s *orderSuite) slotCurrentOrders(slotID uuid.UUID) int32 {
	var current int32
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT current_orders FROM time_slots WHERE id = $1", slotID).Scan(&current)
	require.NoError(s.T(), err)
	return current
}

func (s *orderSuite) TestPlaceOrder() {
	s.Run("注文確定で枠カウントが増える", func() {
		order := s.placeOrder(s.customerToken, s.slotID)

		s.Equal("confirmed", order.Status)
		s.Equal(int64(2500), order.TotalCents)
		s.Regexp(`^ORD-\d{4}-\d{4}$`, order.OrderNumber)
		s.Equal(int32(1), s.slotCurrentOrders(s.slotID))

		// 確認メールジョブが登録される
		var jobCount int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM notification_jobs WHERE kind = 'order_confirmation'").Scan(&jobCount)
		s.Require().NoError(err)
		s.Equal(1, jobCount)
	})

	s.Run("満枠の注文は409", func() {
		s.placeOrder(s.customerToken, s.slotID)
		s.placeOrder(s.customerToken, s.slotID)

		body := reqdto.CreateOrderRequest{
			SlotID: s.slotID,
			Items:  []reqdto.OrderItemRequest{{MenuItemID: s.curryID, Quantity: 1}},
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, body, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "fully booked")
		s.Equal(int32(2), s.slotCurrentOrders(s.slotID))
	})

	s.Run("最終枠への同時注文は片方のみ成功", func() {
		slotID := dbtest.CreateTestSlot(s.T(), s.DB, time.Now().AddDate(0, 0, 2), "18:00", "18:30", 1)

		body := reqdto.CreateOrderRequest{
			SlotID: slotID,
			Items:  []reqdto.OrderItemRequest{{MenuItemID: s.curryID, Quantity: 1}},
		}

		var wg sync.WaitGroup
		codes := make([]int, 2)
		for i := range codes {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, body, s.customerToken)
				codes[idx] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			}
		}
		s.Equal(1, created, "codes: %v", codes)
		s.Equal(int32(1), s.slotCurrentOrders(slotID))
	})

	s.Run("販売停止中の品目は409", func() {
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE menu_items SET is_available = false WHERE id = $1", s.curryID)
		s.Require().NoError(err)

		body := reqdto.CreateOrderRequest{
			SlotID: s.slotID,
			Items:  []reqdto.OrderItemRequest{{MenuItemID: s.curryID, Quantity: 1}},
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, body, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "unavailable")
	})

	s.Run("未認証は401", func() {
		body := reqdto.CreateOrderRequest{
			SlotID: s.slotID,
			Items:  []reqdto.OrderItemRequest{{MenuItemID: s.curryID, Quantity: 1}},
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, body, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *orderSuite) TestCancelOrder() {
	s.Run("期限内キャンセルで枠が解放される", func() {
		order := s.placeOrder(s.customerToken, s.slotID)
		s.Equal(int32(1), s.slotCurrentOrders(s.slotID))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			ordersURL+"/"+order.ID.String()+"/cancel", nil, s.customerToken)

		var cancelled readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)
		s.NotNil(cancelled.CancelledAt)
		s.Equal(int32(0), s.slotCurrentOrders(s.slotID))
	})

	s.Run("二重キャンセルは409", func() {
		order := s.placeOrder(s.customerToken, s.slotID)
		url := ordersURL + "/" + order.ID.String() + "/cancel"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, s.customerToken)
		s.Equal(http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already cancelled")
		s.Equal(int32(0), s.slotCurrentOrders(s.slotID))
	})

	s.Run("他人の注文のキャンセルは403", func() {
		order := s.placeOrder(s.customerToken, s.slotID)
		otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			ordersURL+"/"+order.ID.String()+"/cancel", nil, otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("期限超過のキャンセルは409", func() {
		order := s.placeOrder(s.customerToken, s.slotID)

		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE orders SET cancellation_deadline = now() - interval '1 minute' WHERE id = $1", order.ID)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			ordersURL+"/"+order.ID.String()+"/cancel", nil, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "deadline has passed")
		s.Equal(int32(1), s.slotCurrentOrders(s.slotID))
	})
}

func (s *orderSuite) TestKitchenWorkflow() {
	s.Run("スタッフはステータスを進められる", func() {
		order := s.placeOrder(s.customerToken, s.slotID)
		url := ordersURL + "/" + order.ID.String()

		for _, status := range []string{"in_making", "ready", "picked_up"} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url,
				reqdto.UpdateOrderStatusRequest{Status: status}, s.staffToken)

			var updated readmodel.OrderRM
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
			s.Equal(status, updated.Status)
		}
	})

	s.Run("顧客のステータス変更は403", func() {
		order := s.placeOrder(s.customerToken, s.slotID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			ordersURL+"/"+order.ID.String(),
			reqdto.UpdateOrderStatusRequest{Status: "ready"}, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("顧客は自分の注文のみ一覧される", func() {
		s.placeOrder(s.customerToken, s.slotID)
		otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL, nil, otherToken)
		var mine []readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &mine)
		s.Empty(mine)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL, nil, s.staffToken)
		var all []readmodel.OrderRM
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &all)
		s.Len(all, 1)
	})
}

func (s *orderSuite) TestSweep() {
	s.Run("受取15分前の注文が調理中へ昇格する", func() {
		now := time.Now()
		slotID := dbtest.CreateTestSlot(s.T(), s.DB, now,
			now.Add(10*time.Minute).Format("15:04"),
			now.Add(40*time.Minute).Format("15:04"), 5)
		order := s.placeOrder(s.customerToken, slotID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sweepURL, nil, s.staffToken)
		var preview resdto.SweepPreviewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &preview)
		s.Require().Equal(1, preview.Total)
		s.Require().NotNil(preview.Candidates[0].SuggestedStatus)
		s.Equal("in_making", *preview.Candidates[0].SuggestedStatus)
		s.Equal("high", preview.Candidates[0].Urgency)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sweepURL, nil, s.staffToken)
		var applied resdto.SweepApplyResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &applied)
		s.Require().Equal(1, applied.Total)
		s.Equal("in_making", applied.Updated[0].ToStatus)

		var status string
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT status FROM orders WHERE id = $1", order.ID).Scan(&status)
		s.Require().NoError(err)
		s.Equal("in_making", status)
	})

	s.Run("顧客のスイープ実行は403", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sweepURL, nil, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *orderSuite) TestSlots() {
	s.Run("枠一覧に残数とステータス色が出る", func() {
		s.placeOrder(s.customerToken, s.slotID)
		s.placeOrder(s.customerToken, s.slotID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, slotsURL, nil, "")
		var slots []readmodel.TimeSlotRM
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &slots)
		s.Require().Len(slots, 1)
		s.Equal(int32(0), slots[0].Remaining)
		s.Equal("full", slots[0].Status)
		s.Equal("#ef4444", slots[0].StatusColor)
	})

	s.Run("重複枠の作成は409", func() {
		body := reqdto.CreateSlotRequest{
			Date:      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			StartTime: "12:00",
			EndTime:   "12:30",
			MaxOrders: 5,
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, slotsURL, body, s.staffToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})
}
