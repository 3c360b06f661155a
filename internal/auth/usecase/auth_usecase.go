package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	authdto "github.com/Real-Streeter/liberty-command/internal/auth/dto"
	"github.com/Real-Streeter/liberty-command/internal/auth/repository"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
	teamrepo "github.com/Real-Streeter/liberty-command/internal/team/repository"
	"github.com/Real-Streeter/liberty-command/pkg/config"
	"github.com/Real-Streeter/liberty-command/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

var log = logger.Component("AuthUsecase")

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	members     MemberFinder
	sessionRepo repository.SessionRepository
	config      *config.Config
	now         func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(members MemberFinder, sessionRepo repository.SessionRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		members:     members,
		sessionRepo: sessionRepo,
		config:      cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *authUsecase) Login(ctx context.Context, name, password string) (*authdto.LoginResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, authdomain.ErrMissingCredentials
	}

	member, err := u.members.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if member == nil || !teamrepo.CheckPasswordHash(password, member.PasswordHash) {
		log.WithField("name", name).Warn("failed login")
		return nil, authdomain.ErrInvalidCredentials
	}

	now := u.now()
	session := &authdomain.Session{
		MemberID:  member.ID,
		ExpiresAt: now.Add(u.config.SessionTTL),
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := u.signSession(session, now)
	if err != nil {
		return nil, err
	}

	log.WithField("member_id", member.ID).Info("member logged in")
	return &authdto.LoginResult{Token: token, ExpiresAt: session.ExpiresAt, Member: member}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	sid, err := u.parseSessionID(token)
	if err != nil {
		return nil
	}
	return u.sessionRepo.Delete(ctx, sid)
}

func (u *authUsecase) ValidateToken(ctx context.Context, token string) (*teamdomain.Member, error) {
	if token == "" {
		return nil, authdomain.ErrNotAuthenticated
	}
	sid, err := u.parseSessionID(token)
	if err != nil {
		return nil, authdomain.ErrSessionExpired
	}

	session, err := u.sessionRepo.FindActive(ctx, sid, u.now())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, authdomain.ErrSessionExpired
	}
	return session.Member, nil
}

func (u *authUsecase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return u.sessionRepo.DeleteExpired(ctx, u.now())
}

func (u *authUsecase) signSession(session *authdomain.Session, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.ID,
		"iat": now.Unix(),
		"exp": session.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.SessionSecret))
}

func (u *authUsecase) parseSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("token has no session id")
	}
	return sid, nil
}
