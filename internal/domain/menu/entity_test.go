//go:build unit

package menu_test

import (
	"testing"

	"food-preorder/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewItem(t *testing.T) {
	categoryID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := menu.NewItem(categoryID, "Chicken Curry", ptr("with rice"), 1250, false, 10)
		require.NoError(t, err)

		assert.Equal(t, "Chicken Curry", actual.Name())
		assert.Equal(t, int64(1250), actual.PriceCents())
		assert.Equal(t, int32(10), actual.PrepTimeMin())
		assert.True(t, actual.IsAvailable())
	})

	t.Run("名前検証", func(t *testing.T) {
		cases := []struct {
			name    string
			input   string
			wantErr error
		}{
			{name: "空文字NG", input: "", wantErr: menu.ErrEmptyName},
			{name: "空白のみNG", input: "   ", wantErr: menu.ErrEmptyName},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := menu.NewItem(categoryID, c.input, nil, 500, false, 5)
				require.ErrorIs(t, err, c.wantErr)
			})
		}
	})

	t.Run("負の価格NG", func(t *testing.T) {
		_, err := menu.NewItem(categoryID, "Soup", nil, -1, false, 5)
		require.ErrorIs(t, err, menu.ErrNegativePrice)
	})

	t.Run("負の調理時間NG", func(t *testing.T) {
		_, err := menu.NewItem(categoryID, "Soup", nil, 500, false, -1)
		require.ErrorIs(t, err, menu.ErrInvalidPrep)
	})

	t.Run("価格ゼロOK", func(t *testing.T) {
		actual, err := menu.NewItem(categoryID, "Water", nil, 0, false, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), actual.PriceCents())
	})
}

func TestItemPatchValidate(t *testing.T) {
	cases := []struct {
		name    string
		patch   menu.ItemPatch
		wantErr error
	}{
		{name: "単一フィールドOK", patch: menu.ItemPatch{PriceCents: ptr(int64(990))}},
		{name: "空パッチNG", patch: menu.ItemPatch{}, wantErr: menu.ErrEmptyPatch},
		{name: "空白名NG", patch: menu.ItemPatch{Name: ptr("  ")}, wantErr: menu.ErrEmptyName},
		{name: "負の価格NG", patch: menu.ItemPatch{PriceCents: ptr(int64(-10))}, wantErr: menu.ErrNegativePrice},
		{name: "負の調理時間NG", patch: menu.ItemPatch{PrepTimeMin: ptr(int32(-1))}, wantErr: menu.ErrInvalidPrep},
		{name: "売切フラグのみOK", patch: menu.ItemPatch{IsAvailable: ptr(false)}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.patch.Validate()
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
