package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/utils"
)

type orderFixture struct {
	host  *models.User
	other *models.User
	party *models.Party
	guest *models.PartyGuest
	menu1 *models.Menu
	menu2 *models.Menu
	small *models.Option
	large *models.Option
	extra *models.Option
	svc   *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	other := seedHost(t, db, "host2")
	party := seedParty(t, db, host.ID, "집들이", models.PartyStatusOpen)
	guest := seedGuest(t, db, party.ID, "철수")

	category := seedCategory(t, db, party.ID, "메인", 0)
	menu1 := seedMenu(t, db, category.ID, "김치찌개", 0)
	menu2 := seedMenu(t, db, category.ID, "불고기", 1)

	group := seedOptionGroup(t, db, menu1.ID, "사이즈")
	small := seedOption(t, db, group.ID, "소", 0)
	large := seedOption(t, db, group.ID, "대", 1)
	extra := seedOption(t, db, group.ID, "곱빼기", 2)

	return &orderFixture{
		host:  host,
		other: other,
		party: party,
		guest: guest,
		menu1: menu1,
		menu2: menu2,
		small: small,
		large: large,
		extra: extra,
		svc:   NewOrderService(db),
	}
}

func TestOrderCreate(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("items and options land on one order", func(t *testing.T) {
		order, err := f.svc.Create(OrderCreateParam{
			PartyID: f.party.ID,
			GuestID: f.guest.ID,
			Items: []OrderItemCreateParam{
				{MenuID: f.menu1.ID, Quantity: 2, OptionIDs: []uint{f.small.ID, f.extra.ID}},
				{MenuID: f.menu2.ID, Quantity: 1, Notes: strPtr("덜 맵게"), OptionIDs: []uint{f.large.ID}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, models.OrderStatusReady, order.Status)
		assert.Equal(t, f.guest.ID, order.GuestID)
		require.Len(t, order.Items, 2)

		first := order.Items[0]
		assert.Equal(t, f.menu1.ID, first.MenuID)
		assert.Equal(t, 2, first.Quantity)
		require.Len(t, first.Options, 2)
		assert.Equal(t, f.small.ID, first.Options[0].OptionID)
		assert.Equal(t, f.extra.ID, first.Options[1].OptionID)

		second := order.Items[1]
		assert.Equal(t, f.menu2.ID, second.MenuID)
		assert.Equal(t, "덜 맵게", *second.Notes)
		require.Len(t, second.Options, 1)
		assert.Equal(t, f.large.ID, second.Options[0].OptionID)
	})

	t.Run("unknown party is not found", func(t *testing.T) {
		_, err := f.svc.Create(OrderCreateParam{
			PartyID: 9999,
			GuestID: f.guest.ID,
			Items:   []OrderItemCreateParam{{MenuID: f.menu1.ID, Quantity: 1}},
		})
		requireAppError(t, err, utils.KindNotFound)
	})

	t.Run("guest of another party is forbidden", func(t *testing.T) {
		_, err := f.svc.Create(OrderCreateParam{
			PartyID: f.party.ID,
			GuestID: 9999,
			Items:   []OrderItemCreateParam{{MenuID: f.menu1.ID, Quantity: 1}},
		})
		requireAppError(t, err, utils.KindForbidden)
	})
}

func TestOrderHostAccess(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(OrderCreateParam{
		PartyID: f.party.ID,
		GuestID: f.guest.ID,
		Items:   []OrderItemCreateParam{{MenuID: f.menu1.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	t.Run("host lists party orders", func(t *testing.T) {
		orders, err := f.svc.List(OrderListParam{PartyID: f.party.ID, HostID: f.host.ID})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
	})

	t.Run("another host is forbidden", func(t *testing.T) {
		_, err := f.svc.List(OrderListParam{PartyID: f.party.ID, HostID: f.other.ID})
		requireAppError(t, err, utils.KindForbidden)
	})

	t.Run("host completes the order", func(t *testing.T) {
		status := models.OrderStatusCompleted
		updated, err := f.svc.Update(OrderUpdateParam{
			ID:      order.ID,
			PartyID: f.party.ID,
			HostID:  f.host.ID,
			Status:  &status,
		})
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	})

	t.Run("order from another party is not found", func(t *testing.T) {
		_, err := f.svc.Get(OrderGetParam{ID: 9999, PartyID: f.party.ID, HostID: f.host.ID})
		requireAppError(t, err, utils.KindNotFound)
	})
}
