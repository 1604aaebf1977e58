package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/utils"
)

func TestPartyGuestJoin(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	svc := NewPartyGuestService(db)

	party := seedParty(t, db, host.ID, "집들이", models.PartyStatusOpen)
	seedInviteCode(t, db, party.ID, "ABCD1234", true, nil)

	t.Run("joins an open party", func(t *testing.T) {
		result, err := svc.Join(PartyGuestJoinParam{Code: "ABCD1234", Nickname: "철수"})
		require.NoError(t, err)
		assert.Equal(t, party.ID, result.PartyID)
		assert.Equal(t, "집들이", result.PartyName)
		assert.Equal(t, "철수", result.Nickname)
		assert.NotZero(t, result.GuestID)
	})

	t.Run("code lookup ignores case", func(t *testing.T) {
		result, err := svc.Join(PartyGuestJoinParam{Code: "abcd1234", Nickname: "영희"})
		require.NoError(t, err)
		assert.Equal(t, party.ID, result.PartyID)
	})

	t.Run("absent code is not found", func(t *testing.T) {
		_, err := svc.Join(PartyGuestJoinParam{Code: "NOPE0000", Nickname: "민수"})
		requireAppError(t, err, utils.KindNotFound)
	})

	t.Run("inactive code fails validation", func(t *testing.T) {
		seedInviteCode(t, db, party.ID, "DEAD0001", false, nil)

		_, err := svc.Join(PartyGuestJoinParam{Code: "DEAD0001", Nickname: "민수"})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("expired code fails validation", func(t *testing.T) {
		seedInviteCode(t, db, party.ID, "DEAD0002", true, timePtr(time.Now().Add(-time.Hour)))

		_, err := svc.Join(PartyGuestJoinParam{Code: "DEAD0002", Nickname: "민수"})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("party must be open", func(t *testing.T) {
		planning := seedParty(t, db, host.ID, "준비중", models.PartyStatusPlanning)
		seedInviteCode(t, db, planning.ID, "PLAN0001", true, nil)

		_, err := svc.Join(PartyGuestJoinParam{Code: "PLAN0001", Nickname: "민수"})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("nickname must be unique within the party", func(t *testing.T) {
		_, err := svc.Join(PartyGuestJoinParam{Code: "ABCD1234", Nickname: "철수"})
		requireAppError(t, err, utils.KindConflict)
	})

	t.Run("nickname match is exact, not substring or case-folded", func(t *testing.T) {
		_, err := svc.Join(PartyGuestJoinParam{Code: "ABCD1234", Nickname: "Chulsoo"})
		require.NoError(t, err)

		_, err = svc.Join(PartyGuestJoinParam{Code: "ABCD1234", Nickname: "chulsoo"})
		assert.NoError(t, err)

		_, err = svc.Join(PartyGuestJoinParam{Code: "ABCD1234", Nickname: "Chulsoo2"})
		assert.NoError(t, err)
	})

	t.Run("same nickname is fine in another party", func(t *testing.T) {
		second := seedParty(t, db, host.ID, "다른 파티", models.PartyStatusOpen)
		seedInviteCode(t, db, second.ID, "SECOND01", true, nil)

		_, err := svc.Join(PartyGuestJoinParam{Code: "SECOND01", Nickname: "철수"})
		assert.NoError(t, err)
	})
}

func TestPartyGuestManagement(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	other := seedHost(t, db, "host2")
	svc := NewPartyGuestService(db)

	party := seedParty(t, db, host.ID, "집들이", models.PartyStatusOpen)
	guest := seedGuest(t, db, party.ID, "철수")
	seedGuest(t, db, party.ID, "영희")

	t.Run("list is host-scoped", func(t *testing.T) {
		guests, err := svc.List(PartyGuestListParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)
		assert.Len(t, guests, 2)

		_, err = svc.List(PartyGuestListParam{PartyID: party.ID, HostID: other.ID})
		requireAppError(t, err, utils.KindNotFound)
	})

	t.Run("block a guest", func(t *testing.T) {
		updated, err := svc.Update(PartyGuestUpdateParam{
			ID:        guest.ID,
			PartyID:   party.ID,
			HostID:    host.ID,
			IsBlocked: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, updated.IsBlocked)
	})

	t.Run("rename to a taken nickname conflicts", func(t *testing.T) {
		_, err := svc.Update(PartyGuestUpdateParam{
			ID:       guest.ID,
			PartyID:  party.ID,
			HostID:   host.ID,
			Nickname: strPtr("영희"),
		})
		requireAppError(t, err, utils.KindConflict)
	})

	t.Run("removed guest frees the nickname", func(t *testing.T) {
		require.NoError(t, svc.Delete(PartyGuestDeleteParam{ID: guest.ID, PartyID: party.ID, HostID: host.ID}))

		seedInviteCode(t, db, party.ID, "REJOIN01", true, nil)
		_, err := svc.Join(PartyGuestJoinParam{Code: "REJOIN01", Nickname: "철수"})
		assert.NoError(t, err)
	})
}
