package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Party{},
		&models.Category{},
		&models.Menu{},
		&models.OptionGroup{},
		&models.Option{},
		&models.InviteCode{},
		&models.PartyGuest{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemOption{},
	)
	require.NoError(t, err)

	return db
}

func seedHost(t *testing.T, db *gorm.DB, loginID string) *models.User {
	t.Helper()

	now := time.Now()
	user := &models.User{
		LoginID:   loginID,
		Password:  "hashed",
		Nickname:  loginID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedParty(t *testing.T, db *gorm.DB, hostID uint, name string, status models.PartyStatus) *models.Party {
	t.Helper()

	now := time.Now()
	party := &models.Party{
		HostID:    hostID,
		Name:      name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(party).Error)
	return party
}

func seedCategory(t *testing.T, db *gorm.DB, partyID uint, name string, displayOrder int) *models.Category {
	t.Helper()

	now := time.Now()
	category := &models.Category{
		PartyID:      partyID,
		Name:         name,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedMenu(t *testing.T, db *gorm.DB, categoryID uint, name string, displayOrder int) *models.Menu {
	t.Helper()

	now := time.Now()
	menu := &models.Menu{
		CategoryID:   categoryID,
		Name:         name,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(menu).Error)
	return menu
}

func seedOptionGroup(t *testing.T, db *gorm.DB, menuID uint, name string) *models.OptionGroup {
	t.Helper()

	now := time.Now()
	group := &models.OptionGroup{
		MenuID:    menuID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(group).Error)
	return group
}

func seedOption(t *testing.T, db *gorm.DB, groupID uint, name string, displayOrder int) *models.Option {
	t.Helper()

	now := time.Now()
	option := &models.Option{
		OptionGroupID: groupID,
		Name:          name,
		DisplayOrder:  displayOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(option).Error)
	return option
}

func seedGuest(t *testing.T, db *gorm.DB, partyID uint, nickname string) *models.PartyGuest {
	t.Helper()

	guest := &models.PartyGuest{
		PartyID:  partyID,
		Nickname: nickname,
		JoinedAt: time.Now(),
	}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

func seedInviteCode(t *testing.T, db *gorm.DB, partyID uint, code string, isActive bool, expiresAt *time.Time) *models.InviteCode {
	t.Helper()

	inviteCode := &models.InviteCode{
		PartyID:   partyID,
		Code:      code,
		IsActive:  isActive,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(inviteCode).Error)
	// IsActive has a gorm default of true, which replaces a zero-value false
	// in the INSERT, so an inactive code must be downgraded after creation.
	if !isActive {
		require.NoError(t, db.Model(inviteCode).UpdateColumn("is_active", false).Error)
	}
	return inviteCode
}

func requireAppError(t *testing.T, err error, kind utils.ErrorKind) *utils.AppError {
	t.Helper()

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok, "expected *utils.AppError, got %T: %v", err, err)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

func strPtr(s string) *string {
	return &s
}

func timePtr(tm time.Time) *time.Time {
	return &tm
}

func statusPtr(s models.PartyStatus) *models.PartyStatus {
	return &s
}
