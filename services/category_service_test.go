package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/utils"
)

func TestCategoryCreate(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	other := seedHost(t, db, "host2")
	party := seedParty(t, db, host.ID, "파티", models.PartyStatusPlanning)
	svc := NewCategoryService(db)

	t.Run("display order counts up from zero", func(t *testing.T) {
		first, err := svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: host.ID, Name: "메인 요리"})
		require.NoError(t, err)
		assert.Equal(t, 0, first.DisplayOrder)

		second, err := svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: host.ID, Name: "디저트"})
		require.NoError(t, err)
		assert.Equal(t, 1, second.DisplayOrder)
	})

	t.Run("duplicate name is case-insensitive", func(t *testing.T) {
		_, err := svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: host.ID, Name: "Drinks"})
		require.NoError(t, err)

		_, err = svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: host.ID, Name: "DRINKS"})
		requireAppError(t, err, utils.KindConflict)
	})

	t.Run("deleted category frees its name", func(t *testing.T) {
		created, err := svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: host.ID, Name: "안주"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(CategoryDeleteParam{ID: created.ID, PartyID: party.ID, HostID: host.ID}))

		_, err = svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: host.ID, Name: "안주"})
		assert.NoError(t, err)
	})

	t.Run("foreign party reads as not found", func(t *testing.T) {
		_, err := svc.Create(CategoryCreateParam{PartyID: party.ID, HostID: other.ID, Name: "침입"})
		requireAppError(t, err, utils.KindNotFound)
	})
}

func TestCategoryReorder(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	party := seedParty(t, db, host.ID, "파티", models.PartyStatusPlanning)
	svc := NewCategoryService(db)

	a := seedCategory(t, db, party.ID, "A", 0)
	b := seedCategory(t, db, party.ID, "B", 1)
	c := seedCategory(t, db, party.ID, "C", 2)

	t.Run("partial list moves listed ids to the front", func(t *testing.T) {
		result, err := svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: []uint{c.ID},
		})
		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, []uint{c.ID, a.ID, b.ID}, []uint{result[0].ID, result[1].ID, result[2].ID})
		assert.Equal(t, []int{0, 1, 2}, []int{result[0].DisplayOrder, result[1].DisplayOrder, result[2].DisplayOrder})
	})

	t.Run("reorder is idempotent", func(t *testing.T) {
		first, err := svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: []uint{b.ID, a.ID, c.ID},
		})
		require.NoError(t, err)

		second, err := svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: []uint{b.ID, a.ID, c.ID},
		})
		require.NoError(t, err)
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.Equal(t, first[i].DisplayOrder, second[i].DisplayOrder)
		}
	})

	t.Run("unknown id rolls everything back", func(t *testing.T) {
		before, err := svc.List(CategoryListParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)

		_, err = svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: []uint{a.ID, 9999},
		})
		requireAppError(t, err, utils.KindNotFound)

		after, err := svc.List(CategoryListParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)
		require.Len(t, after, len(before))
		for i := range before {
			assert.Equal(t, before[i].ID, after[i].ID)
			assert.Equal(t, before[i].DisplayOrder, after[i].DisplayOrder)
		}
	})

	t.Run("empty id list changes nothing", func(t *testing.T) {
		before, err := svc.List(CategoryListParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)

		result, err := svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: nil,
		})
		require.NoError(t, err)
		require.Len(t, result, len(before))
		for i := range before {
			assert.Equal(t, before[i].ID, result[i].ID)
			assert.Equal(t, before[i].DisplayOrder, result[i].DisplayOrder)
		}
	})

	t.Run("deleted sibling is ignored", func(t *testing.T) {
		require.NoError(t, svc.Delete(CategoryDeleteParam{ID: b.ID, PartyID: party.ID, HostID: host.ID}))

		_, err := svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: []uint{b.ID},
		})
		requireAppError(t, err, utils.KindNotFound)

		result, err := svc.Reorder(CategoryReorderParam{
			PartyID:     party.ID,
			HostID:      host.ID,
			CategoryIDs: []uint{c.ID, a.ID},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestCategoryUpdate(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	party := seedParty(t, db, host.ID, "파티", models.PartyStatusPlanning)
	svc := NewCategoryService(db)

	category := seedCategory(t, db, party.ID, "메인", 0)
	seedCategory(t, db, party.ID, "디저트", 1)

	t.Run("rename to an existing name conflicts", func(t *testing.T) {
		_, err := svc.Update(CategoryUpdateParam{
			ID:      category.ID,
			PartyID: party.ID,
			HostID:  host.ID,
			Name:    strPtr("디저트"),
		})
		requireAppError(t, err, utils.KindConflict)
	})

	t.Run("renaming to the same name is accepted", func(t *testing.T) {
		updated, err := svc.Update(CategoryUpdateParam{
			ID:      category.ID,
			PartyID: party.ID,
			HostID:  host.ID,
			Name:    strPtr("메인"),
		})
		require.NoError(t, err)
		assert.Equal(t, "메인", updated.Name)
	})
}
