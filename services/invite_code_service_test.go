package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/utils"
)

func TestInviteCodeCreate(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	other := seedHost(t, db, "host2")
	party := seedParty(t, db, host.ID, "집들이", models.PartyStatusPlanning)
	svc := NewInviteCodeService(db)

	t.Run("generates a short uppercase code", func(t *testing.T) {
		code, err := svc.Create(InviteCodeCreateParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), code.Code)
		assert.True(t, code.IsActive)
		assert.Nil(t, code.ExpiresAt)
	})

	t.Run("codes differ between creations", func(t *testing.T) {
		first, err := svc.Create(InviteCodeCreateParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)
		second, err := svc.Create(InviteCodeCreateParam{PartyID: party.ID, HostID: host.ID})
		require.NoError(t, err)
		assert.NotEqual(t, first.Code, second.Code)
	})

	t.Run("past expiry rejected", func(t *testing.T) {
		_, err := svc.Create(InviteCodeCreateParam{
			PartyID:   party.ID,
			HostID:    host.ID,
			ExpiresAt: timePtr(time.Now().Add(-time.Minute)),
		})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("foreign party reads as not found", func(t *testing.T) {
		_, err := svc.Create(InviteCodeCreateParam{PartyID: party.ID, HostID: other.ID})
		requireAppError(t, err, utils.KindNotFound)
	})
}

func TestInviteCodeLifecycle(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "host1")
	party := seedParty(t, db, host.ID, "집들이", models.PartyStatusOpen)
	codeSvc := NewInviteCodeService(db)
	guestSvc := NewPartyGuestService(db)

	code, err := codeSvc.Create(InviteCodeCreateParam{PartyID: party.ID, HostID: host.ID})
	require.NoError(t, err)

	t.Run("deactivated code no longer admits guests", func(t *testing.T) {
		_, err := codeSvc.Update(InviteCodeUpdateParam{
			ID:       code.ID,
			PartyID:  party.ID,
			HostID:   host.ID,
			IsActive: boolPtr(false),
		})
		require.NoError(t, err)

		_, err = guestSvc.Join(PartyGuestJoinParam{Code: code.Code, Nickname: "철수"})
		requireAppError(t, err, utils.KindBadRequest)
	})

	t.Run("reactivated code admits guests again", func(t *testing.T) {
		_, err := codeSvc.Update(InviteCodeUpdateParam{
			ID:       code.ID,
			PartyID:  party.ID,
			HostID:   host.ID,
			IsActive: boolPtr(true),
		})
		require.NoError(t, err)

		_, err = guestSvc.Join(PartyGuestJoinParam{Code: code.Code, Nickname: "철수"})
		assert.NoError(t, err)
	})

	t.Run("deleted code disappears", func(t *testing.T) {
		require.NoError(t, codeSvc.Delete(InviteCodeDeleteParam{ID: code.ID, PartyID: party.ID, HostID: host.ID}))

		_, err := codeSvc.Get(InviteCodeGetParam{ID: code.ID, PartyID: party.ID, HostID: host.ID})
		requireAppError(t, err, utils.KindNotFound)

		_, err = guestSvc.Join(PartyGuestJoinParam{Code: code.Code, Nickname: "영희"})
		requireAppError(t, err, utils.KindNotFound)
	})
}
