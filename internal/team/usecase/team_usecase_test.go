package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	"github.com/Real-Streeter/liberty-command/internal/team/domain"
	"github.com/Real-Streeter/liberty-command/internal/team/dto"
	"github.com/Real-Streeter/liberty-command/internal/team/repository"
	"github.com/Real-Streeter/liberty-command/internal/testutil"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

func newTeam(t *testing.T) (TeamUsecase, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewTeamUsecase(repository.NewMemberRepository(db), "liberty"), db
}

func TestCreateMemberDefaults(t *testing.T) {
	uc, _ := newTeam(t)

	member, err := uc.CreateMember(context.Background(), dto.CreateMemberRequest{Name: "FreightSnap"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(member.ID, "user-"))
	assert.Equal(t, domain.DefaultColor, member.Color)
	assert.Equal(t, domain.RoleMember, member.Role)
	assert.True(t, repository.CheckPasswordHash("liberty", member.PasswordHash))
}

func TestCreateMemberValidation(t *testing.T) {
	uc, _ := newTeam(t)
	ctx := context.Background()

	_, err := uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "  "})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.CreateMember(ctx, dto.CreateMemberRequest{Name: strings.Repeat("n", domain.MaxNameLength+1)})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "Dev Team", Role: "owner"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "Dev Team"})
	require.NoError(t, err)
	_, err = uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "Dev Team"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateMember(t *testing.T) {
	uc, _ := newTeam(t)
	ctx := context.Background()

	kevin, err := uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "Kevin", Color: "emerald"})
	require.NoError(t, err)
	_, err = uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "Kirk"})
	require.NoError(t, err)

	color := "amber"
	password := "s3cret"
	updated, err := uc.UpdateMember(ctx, kevin.ID, dto.UpdateMemberRequest{Color: &color, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "Kevin", updated.Name)
	assert.Equal(t, "amber", updated.Color)
	assert.True(t, repository.CheckPasswordHash("s3cret", updated.PasswordHash))

	taken := "Kirk"
	_, err = uc.UpdateMember(ctx, kevin.ID, dto.UpdateMemberRequest{Name: &taken})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	same := "Kevin"
	_, err = uc.UpdateMember(ctx, kevin.ID, dto.UpdateMemberRequest{Name: &same})
	assert.NoError(t, err)

	_, err = uc.UpdateMember(ctx, "user-missing", dto.UpdateMemberRequest{Color: &color})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteMemberRemovesSessions(t *testing.T) {
	uc, db := newTeam(t)
	ctx := context.Background()

	admin, err := uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "Kirk", Role: "admin"})
	require.NoError(t, err)
	ext, err := uc.CreateMember(ctx, dto.CreateMemberRequest{Name: "External"})
	require.NoError(t, err)

	session := authdomain.Session{ID: "s-1", MemberID: ext.ID, ExpiresAt: time.Now().UTC().Add(time.Hour)}
	require.NoError(t, db.Omit("Member").Create(&session).Error)

	assert.ErrorIs(t, uc.DeleteMember(ctx, admin.ID, admin.ID), apperr.ErrValidation)

	require.NoError(t, uc.DeleteMember(ctx, admin.ID, ext.ID))
	var count int64
	require.NoError(t, db.Model(&authdomain.Session{}).Where("member_id = ?", ext.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, uc.DeleteMember(ctx, admin.ID, ext.ID), apperr.ErrNotFound)

	members, err := uc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Kirk", members[0].Name)
}
