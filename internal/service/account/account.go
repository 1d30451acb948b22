package account

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/redis/go-redis/v9"

	"github.com/reportcare/reportcare_backend/config"
	"github.com/reportcare/reportcare_backend/internal/repo"
	entlab "github.com/reportcare/reportcare_backend/internal/repo/lab"
	"github.com/reportcare/reportcare_backend/pkg/authorize"
	"github.com/reportcare/reportcare_backend/pkg/email"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
	"github.com/reportcare/reportcare_backend/pkg/util/password"
)

const licensePrefix = "LAB-"

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email     string
	Password  string
	Name      string
	Role      string // lab | member; empty defaults to member
	Phone     string
	Address   string
	LicenseNo string
}

type LoginRequest struct {
	Email    string
	Password string
}

type UpdateProfileRequest struct {
	Name      *string
	Phone     *string
	Address   *string
	LicenseNo *string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*repo.Lab, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	GetByID(ctx context.Context, id int) (*repo.Lab, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*repo.Lab, error)
	ChangePassword(ctx context.Context, id int, current, next string) error
	SetProfilePic(ctx context.Context, id int, key string) (*repo.Lab, error)
	SetSignatureImg(ctx context.Context, id int, key string) (*repo.Lab, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type accountService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	mail   *email.Client
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	mail *email.Client,
	cfg *config.Config,
) Service {
	return &accountService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		authz:  authz,
		mail:   mail,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *accountService) Register(ctx context.Context, req RegisterRequest) (*repo.Lab, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.LicenseNo = strings.TrimSpace(req.LicenseNo)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	role := req.Role
	if role == "" {
		role = authorize.AccountRoleMember
	}
	if role != authorize.AccountRoleLab && role != authorize.AccountRoleMember {
		return nil, ErrInvalidRole
	}

	// Lab accounts issue reports, so their license must be on file.
	if role == authorize.AccountRoleLab && !strings.HasPrefix(req.LicenseNo, licensePrefix) {
		return nil, ErrInvalidLicense
	}

	var phoneE164 string
	if req.Phone != "" {
		num, err := phonenumbers.Parse(req.Phone, "IN")
		if err != nil || !phonenumbers.IsValidNumber(num) {
			return nil, ErrInvalidPhone
		}
		phoneE164 = phonenumbers.Format(num, phonenumbers.E164)
	}

	exists, err := s.db.Lab.Query().Where(entlab.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := s.db.Lab.Create().
		SetRole(entlab.Role(role)).
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetName(req.Name)

	if phoneE164 != "" {
		q = q.SetPhone(phoneE164)
	}
	if req.Address != "" {
		q = q.SetAddress(req.Address)
	}
	if req.LicenseNo != "" {
		q = q.SetLicenseNo(req.LicenseNo)
	}

	lab, err := q.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	// Authorization bindings; the enforcer is in-memory and re-derived on login,
	// so failures here only cost this process.
	if err := authorize.AssignUserSelfRole(ctx, s.authz, lab.ID); err != nil {
		slog.Warn("assign self role failed", "account_id", lab.ID, "error", err)
	}
	if err := authorize.AssignLabRole(ctx, s.authz, lab.ID, role); err != nil {
		slog.Warn("assign lab role failed", "account_id", lab.ID, "error", err)
	}

	// Welcome email is best-effort.
	msg := email.BuildWelcomeEmail(email.WelcomeEmailData{
		LabName: lab.Name,
		Email:   lab.Email,
		AppName: "ReportCare",
	})
	if err := s.mail.Send(ctx, msg); err != nil {
		slog.Debug("welcome email not sent", "account_id", lab.ID, "error", err)
	}

	return lab, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *accountService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	lab, err := s.db.Lab.Query().Where(entlab.Email(req.Email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if err := password.Verify(lab.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Re-derive authorization bindings; the enforcer does not persist them.
	if err := authorize.AssignUserSelfRole(ctx, s.authz, lab.ID); err != nil {
		slog.Warn("assign self role failed", "account_id", lab.ID, "error", err)
	}
	if err := authorize.AssignLabRole(ctx, s.authz, lab.ID, string(lab.Role)); err != nil {
		slog.Warn("assign lab role failed", "account_id", lab.ID, "error", err)
	}

	return s.createSession(ctx, lab)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *accountService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *accountService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func (s *accountService) GetByID(ctx context.Context, id int) (*repo.Lab, error) {
	lab, err := s.db.Lab.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return lab, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*repo.Lab, error) {
	lab, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Lab.UpdateOne(lab)

	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			num, err := phonenumbers.Parse(*req.Phone, "IN")
			if err != nil || !phonenumbers.IsValidNumber(num) {
				return nil, ErrInvalidPhone
			}
			upd = upd.SetPhone(phonenumbers.Format(num, phonenumbers.E164))
		}
	}
	if req.Address != nil {
		upd = upd.SetAddress(*req.Address)
	}
	if req.LicenseNo != nil {
		if lab.Role == entlab.RoleLab && !strings.HasPrefix(*req.LicenseNo, licensePrefix) {
			return nil, ErrInvalidLicense
		}
		upd = upd.SetLicenseNo(*req.LicenseNo)
	}

	return upd.Save(ctx)
}

func (s *accountService) ChangePassword(ctx context.Context, id int, current, next string) error {
	lab, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := password.Verify(lab.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Lab.UpdateOne(lab).SetPasswordHash(hash).Save(ctx)
	return err
}

func (s *accountService) SetProfilePic(ctx context.Context, id int, key string) (*repo.Lab, error) {
	lab, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.db.Lab.UpdateOne(lab).SetProfilePic(key).Save(ctx)
}

func (s *accountService) SetSignatureImg(ctx context.Context, id int, key string) (*repo.Lab, error) {
	lab, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.db.Lab.UpdateOne(lab).SetSignatureImg(key).Save(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *accountService) createSession(ctx context.Context, lab *repo.Lab) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, lab.ID, refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(lab.ID, string(lab.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(lab.ID, string(lab.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
