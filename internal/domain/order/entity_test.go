//go:build unit

package order_test

import (
	"testing"
	"time"

	"food-preorder/internal/domain/order"
	"food-preorder/internal/domain/user"
	"food-preorder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, order.StatusConfirmed, actual.Status())
		assert.Equal(t, int64(2500), actual.Total().Cents())
		assert.Equal(t, b.SlotStartAt.Add(-15*time.Minute), actual.CancellationDeadline())
		assert.Regexp(t, `^ORD-\d{4}-\d{4}$`, actual.OrderNumber())
		assert.Nil(t, actual.CancelledAt())
	})

	t.Run("合計は小計の和", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithItems(
			builder.OrderItemSpec{Name: "Udon", Quantity: 3, PriceCents: 800},
			builder.OrderItemSpec{Name: "Onigiri", Quantity: 2, PriceCents: 250},
		).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(3*800+2*250), actual.Total().Cents())
	})

	t.Run("明細なしNG", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithItems().BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, order.ErrNoItems)
	})
}

func TestLineItem(t *testing.T) {
	price := order.NewMoney(1250)

	t.Run("小計は単価×数量", func(t *testing.T) {
		li, err := order.NewLineItem(uuid.New(), "Bento", 4, price, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), li.Subtotal().Cents())
	})

	t.Run("数量ゼロNG", func(t *testing.T) {
		_, err := order.NewLineItem(uuid.New(), "Bento", 0, price, nil)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("負の単価NG", func(t *testing.T) {
		_, err := order.NewLineItem(uuid.New(), "Bento", 1, order.NewMoney(-100), nil)
		require.ErrorIs(t, err, order.ErrNegativePrice)
	})
}

func TestValidateCancellation(t *testing.T) {
	b := builder.NewOrderBuilder()
	beforeDeadline := b.SlotStartAt.Add(-30 * time.Minute)
	afterDeadline := b.SlotStartAt.Add(-10 * time.Minute)

	build := func() *order.Order {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		return o
	}

	t.Run("所有者が期限内ならOK", func(t *testing.T) {
		o := build()
		require.NoError(t, o.ValidateCancellation(o.UserID(), user.RoleCustomer, beforeDeadline))
	})

	t.Run("他人の注文NG", func(t *testing.T) {
		o := build()
		err := o.ValidateCancellation(uuid.New(), user.RoleCustomer, beforeDeadline)
		require.ErrorIs(t, err, order.ErrNotOwner)
	})

	t.Run("スタッフも他人の注文NG", func(t *testing.T) {
		o := build()
		err := o.ValidateCancellation(uuid.New(), user.RoleStaff, beforeDeadline)
		require.ErrorIs(t, err, order.ErrNotOwner)
	})

	t.Run("期限超過NG", func(t *testing.T) {
		o := build()
		err := o.ValidateCancellation(o.UserID(), user.RoleCustomer, afterDeadline)
		require.ErrorIs(t, err, order.ErrDeadlinePassed)
	})

	t.Run("期限ちょうどNG", func(t *testing.T) {
		o := build()
		err := o.ValidateCancellation(o.UserID(), user.RoleCustomer, o.CancellationDeadline())
		require.ErrorIs(t, err, order.ErrDeadlinePassed)
	})

	t.Run("管理者は期限超過でもOK", func(t *testing.T) {
		o := build()
		require.NoError(t, o.ValidateCancellation(uuid.New(), user.RoleAdmin, afterDeadline))
	})

	t.Run("準備完了後NG", func(t *testing.T) {
		o := reconstructWithStatus(t, order.StatusReady)
		err := o.ValidateCancellation(o.UserID(), user.RoleCustomer, beforeDeadline)
		require.ErrorIs(t, err, order.ErrNotCancellable)
	})

	t.Run("受取済みは管理者でもNG", func(t *testing.T) {
		o := reconstructWithStatus(t, order.StatusPickedUp)
		err := o.ValidateCancellation(uuid.New(), user.RoleAdmin, beforeDeadline)
		require.ErrorIs(t, err, order.ErrNotCancellable)
	})

	t.Run("二重キャンセルNG", func(t *testing.T) {
		o := build()
		o.Cancel(beforeDeadline)
		err := o.ValidateCancellation(o.UserID(), user.RoleCustomer, beforeDeadline)
		require.ErrorIs(t, err, order.ErrAlreadyCancelled)
	})

	t.Run("管理者でも二重キャンセルNG", func(t *testing.T) {
		o := build()
		o.Cancel(beforeDeadline)
		err := o.ValidateCancellation(uuid.New(), user.RoleAdmin, beforeDeadline)
		require.ErrorIs(t, err, order.ErrAlreadyCancelled)
	})
}

func reconstructWithStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	base, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)
	return order.ReconstructOrder(
		base.ID(), base.OrderNumber(), base.UserID(), base.SlotID(),
		base.Items(), base.Total(), status, nil,
		base.CancellationDeadline(), base.CreatedAt(), nil,
	)
}

func TestCancel(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	o.Cancel(now)

	assert.Equal(t, order.StatusCancelled, o.Status())
	require.NotNil(t, o.CancelledAt())
	assert.Equal(t, now, *o.CancelledAt())
}

func TestSweepTarget(t *testing.T) {
	cases := []struct {
		name    string
		current order.Status
		minutes int
		want    order.Status
		wantDue bool
	}{
		{name: "確定済み2分前はready", current: order.StatusConfirmed, minutes: 2, want: order.StatusReady, wantDue: true},
		{name: "調理中1分前はready", current: order.StatusInMaking, minutes: 1, want: order.StatusReady, wantDue: true},
		{name: "確定済み15分前は調理中", current: order.StatusConfirmed, minutes: 15, want: order.StatusInMaking, wantDue: true},
		{name: "確定済み10分前は調理中", current: order.StatusConfirmed, minutes: 10, want: order.StatusInMaking, wantDue: true},
		{name: "調理中10分前は変更なし", current: order.StatusInMaking, minutes: 10, wantDue: false},
		{name: "確定済み16分前は変更なし", current: order.StatusConfirmed, minutes: 16, wantDue: false},
		{name: "受取済みは対象外", current: order.StatusPickedUp, minutes: 1, wantDue: false},
		{name: "キャンセル済みは対象外", current: order.StatusCancelled, minutes: 1, wantDue: false},
		{name: "準備完了は対象外", current: order.StatusReady, minutes: 1, wantDue: false},
		{name: "経過後もready", current: order.StatusConfirmed, minutes: -5, want: order.StatusReady, wantDue: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, due := order.SweepTarget(c.current, c.minutes)
			assert.Equal(t, c.wantDue, due)
			if c.wantDue {
				assert.Equal(t, c.want, got)
			}
		})
	}
}

func TestUrgency(t *testing.T) {
	assert.Equal(t, "critical", order.Urgency(0))
	assert.Equal(t, "critical", order.Urgency(2))
	assert.Equal(t, "high", order.Urgency(3))
	assert.Equal(t, "high", order.Urgency(15))
	assert.Equal(t, "normal", order.Urgency(16))
}
