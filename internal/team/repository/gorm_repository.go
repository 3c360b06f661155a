package repository

import (
	"context"
	"errors"
	"time"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	"github.com/Real-Streeter/liberty-command/internal/team/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of memberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	if member.ID == "" {
		member.ID = "user-" + uuid.NewString()
	}
	member.CreatedAt = time.Now()
	member.UpdatedAt = member.CreatedAt
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	var members []*domain.Member
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&members).Error
	return members, err
}

func (r *memberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *memberRepository) FindByName(ctx context.Context, name string) (*domain.Member, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *memberRepository) findOne(ctx context.Context, query string, arg string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.WithContext(ctx).Where(query, arg).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	member.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&authdomain.Session{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Member{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
