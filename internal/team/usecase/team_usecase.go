package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Real-Streeter/liberty-command/internal/team/domain"
	"github.com/Real-Streeter/liberty-command/internal/team/dto"
	"github.com/Real-Streeter/liberty-command/internal/team/repository"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"
	"github.com/Real-Streeter/liberty-command/pkg/logger"
)

var log = logger.Component("TeamUsecase")

type teamUsecase struct {
	memberRepo      repository.MemberRepository
	defaultPassword string
}

// NewTeamUsecase creates a new instance of teamUsecase. New members without a
// password get defaultPassword.
func NewTeamUsecase(memberRepo repository.MemberRepository, defaultPassword string) TeamUsecase {
	return &teamUsecase{
		memberRepo:      memberRepo,
		defaultPassword: defaultPassword,
	}
}

func (u *teamUsecase) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	members, err := u.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*domain.Member{}
	}
	return members, nil
}

func (u *teamUsecase) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}
	color, err := validateColor(req.Color)
	if err != nil {
		return nil, err
	}

	role := domain.RoleMember
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			return nil, apperr.Validation("role must be admin or member")
		}
	}

	if err := u.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	password := req.Password
	if password == "" {
		password = u.defaultPassword
	}
	hash, err := repository.HashPassword(password)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Name:         name,
		Color:        color,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	log.WithField("member_id", member.ID).Info("member added")
	return member, nil
}

func (u *teamUsecase) UpdateMember(ctx context.Context, id string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	member, err := u.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrMemberNotFound
	}

	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		if err := u.ensureNameFree(ctx, name, member.ID); err != nil {
			return nil, err
		}
		member.Name = name
	}
	if req.Color != nil {
		color, err := validateColor(*req.Color)
		if err != nil {
			return nil, err
		}
		member.Color = color
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := repository.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = hash
	}

	if err := u.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (u *teamUsecase) DeleteMember(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrDeleteSelf
	}
	deleted, err := u.memberRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrMemberNotFound
	}
	log.WithField("member_id", id).WithField("by", actorID).Info("member removed")
	return nil
}

func (u *teamUsecase) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := u.memberRepo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.DuplicateNameError(name)
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("name is required")
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return "", apperr.Validation(fmt.Sprintf("name must be at most %d characters", domain.MaxNameLength))
	}
	return name, nil
}

func validateColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return domain.DefaultColor, nil
	}
	if utf8.RuneCountInString(color) > domain.MaxColorLength {
		return "", apperr.Validation(fmt.Sprintf("color must be at most %d characters", domain.MaxColorLength))
	}
	return color, nil
}
