package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/utils"
)

func TestPartyCreate(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	svc := NewPartyService(db)

	t.Run("starts in PLANNING", func(t *testing.T) {
		party, err := svc.Create(CreatePartyParam{
			HostID: host.ID,
			Name:   "집들이",
			Date:   timePtr(time.Now().Add(48 * time.Hour)),
		})
		require.NoError(t, err)
		assert.Equal(t, models.PartyStatusPlanning, party.Status)
		assert.NotZero(t, party.ID)
	})

	t.Run("past date rejected", func(t *testing.T) {
		_, err := svc.Create(CreatePartyParam{
			HostID: host.ID,
			Name:   "지난 파티",
			Date:   timePtr(time.Now().Add(-time.Hour)),
		})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("nil date skips date validation", func(t *testing.T) {
		party, err := svc.Create(CreatePartyParam{
			HostID: host.ID,
			Name:   "날짜 미정",
		})
		require.NoError(t, err)
		assert.Nil(t, party.Date)
	})

	t.Run("duplicate name and date rejected", func(t *testing.T) {
		date := time.Now().Add(72 * time.Hour)
		_, err := svc.Create(CreatePartyParam{HostID: host.ID, Name: "생일 파티", Date: &date})
		require.NoError(t, err)

		_, err = svc.Create(CreatePartyParam{HostID: host.ID, Name: "생일 파티", Date: &date})
		requireAppError(t, err, utils.KindConflict)
	})

	t.Run("cancelled party does not block the same name and date", func(t *testing.T) {
		date := time.Now().Add(96 * time.Hour)
		first, err := svc.Create(CreatePartyParam{HostID: host.ID, Name: "송년회", Date: &date})
		require.NoError(t, err)

		_, err = svc.Update(UpdatePartyParam{
			ID:     first.ID,
			HostID: host.ID,
			Status: statusPtr(models.PartyStatusCancelled),
		})
		require.NoError(t, err)

		_, err = svc.Create(CreatePartyParam{HostID: host.ID, Name: "송년회", Date: &date})
		assert.NoError(t, err)
	})
}

func TestPartyStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    models.PartyStatus
		to      models.PartyStatus
		allowed bool
	}{
		{"planning to open", models.PartyStatusPlanning, models.PartyStatusOpen, true},
		{"planning to cancelled", models.PartyStatusPlanning, models.PartyStatusCancelled, true},
		{"planning to closed", models.PartyStatusPlanning, models.PartyStatusClosed, false},
		{"open to closed", models.PartyStatusOpen, models.PartyStatusClosed, true},
		{"open to cancelled", models.PartyStatusOpen, models.PartyStatusCancelled, true},
		{"open to planning", models.PartyStatusOpen, models.PartyStatusPlanning, false},
		{"closed reopens", models.PartyStatusClosed, models.PartyStatusOpen, true},
		{"closed to cancelled", models.PartyStatusClosed, models.PartyStatusCancelled, true},
		{"closed to planning", models.PartyStatusClosed, models.PartyStatusPlanning, false},
		{"cancelled is terminal", models.PartyStatusCancelled, models.PartyStatusOpen, false},
		{"same state is a no-op", models.PartyStatusOpen, models.PartyStatusOpen, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			host := seedHost(t, db, "host1")
			party := seedParty(t, db, host.ID, "파티", tc.from)
			svc := NewPartyService(db)

			updated, err := svc.Update(UpdatePartyParam{
				ID:     party.ID,
				HostID: host.ID,
				Status: &tc.to,
			})
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
			} else {
				requireAppError(t, err, utils.KindBadRequest)
			}
		})
	}
}

func TestPartyUpdate(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	other := seedHost(t, db, "host2")
	svc := NewPartyService(db)

	party := seedParty(t, db, host.ID, "홈파티", models.PartyStatusPlanning)

	t.Run("foreign party reads as not found", func(t *testing.T) {
		_, err := svc.Update(UpdatePartyParam{
			ID:     party.ID,
			HostID: other.ID,
			Name:   strPtr("탈취"),
		})
		requireAppError(t, err, utils.KindNotFound)
	})

	t.Run("unchanged date is not re-validated", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour)
		stale := seedParty(t, db, host.ID, "지난 모임", models.PartyStatusPlanning)
		require.NoError(t, db.Model(stale).Update("date", past).Error)

		updated, err := svc.Update(UpdatePartyParam{
			ID:       stale.ID,
			HostID:   host.ID,
			Location: strPtr("우리집"),
			Date:     timePtr(past),
		})
		require.NoError(t, err)
		assert.Equal(t, "우리집", *updated.Location)
	})
}

func TestPartyDelete(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	svc := NewPartyService(db)

	t.Run("cancelled party can be deleted", func(t *testing.T) {
		party := seedParty(t, db, host.ID, "취소된 파티", models.PartyStatusCancelled)
		require.NoError(t, svc.Delete(DeletePartyParam{ID: party.ID, HostID: host.ID}))

		_, err := svc.Get(GetPartyParam{ID: party.ID, HostID: host.ID})
		requireAppError(t, err, utils.KindNotFound)
	})

	t.Run("planning party without guests can be deleted", func(t *testing.T) {
		party := seedParty(t, db, host.ID, "빈 파티", models.PartyStatusPlanning)
		assert.NoError(t, svc.Delete(DeletePartyParam{ID: party.ID, HostID: host.ID}))
	})

	t.Run("planning party with guests cannot be deleted", func(t *testing.T) {
		party := seedParty(t, db, host.ID, "손님 있는 파티", models.PartyStatusPlanning)
		seedGuest(t, db, party.ID, "게스트")

		err := svc.Delete(DeletePartyParam{ID: party.ID, HostID: host.ID})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("open party cannot be deleted", func(t *testing.T) {
		party := seedParty(t, db, host.ID, "진행중 파티", models.PartyStatusOpen)
		err := svc.Delete(DeletePartyParam{ID: party.ID, HostID: host.ID})
		requireAppError(t, err, utils.KindBadRequest)
	})
}

func TestPartyList(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	other := seedHost(t, db, "host2")
	svc := NewPartyService(db)

	seedParty(t, db, host.ID, "집들이", models.PartyStatusPlanning)
	seedParty(t, db, host.ID, "생일 파티", models.PartyStatusOpen)
	seedParty(t, db, other.ID, "남의 파티", models.PartyStatusOpen)

	t.Run("scoped to host", func(t *testing.T) {
		parties, err := svc.List(ListPartyParam{HostID: host.ID})
		require.NoError(t, err)
		assert.Len(t, parties, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		parties, err := svc.List(ListPartyParam{
			HostID: host.ID,
			Status: statusPtr(models.PartyStatusOpen),
		})
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, "생일 파티", parties[0].Name)
	})

	t.Run("filtered by name substring", func(t *testing.T) {
		parties, err := svc.List(ListPartyParam{HostID: host.ID, Name: strPtr("생일")})
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, "생일 파티", parties[0].Name)
	})

	t.Run("filtered by date range", func(t *testing.T) {
		date := time.Date(2026, 12, 24, 19, 0, 0, 0, time.UTC)
		dated := seedParty(t, db, host.ID, "크리스마스", models.PartyStatusPlanning)
		require.NoError(t, db.Model(dated).Update("date", date).Error)

		parties, err := svc.List(ListPartyParam{
			HostID:   host.ID,
			DateFrom: timePtr(date.Add(-24 * time.Hour)),
			DateTo:   timePtr(date.Add(24 * time.Hour)),
		})
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, "크리스마스", parties[0].Name)
	})
}
