package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"nexus/config"
	"nexus/models"
	"nexus/services/booking"
	"nexus/utils"
)

const roleSnapshotKey = "session:role"

// account is a seeded demo login. Passwords are stored bcrypt-hashed even
// though the accounts are fake; the check path is the real one.
type account struct {
	role models.Role
	hash []byte
}

// SessionService owns the role-scoped session state: active role, screen
// navigation, and the single-flight guard for simulated-async operations.
type SessionService interface {
	Role(ctx context.Context) models.Role
	// SwitchRole clears role-scoped state (draft, navigation history) and
	// seeds the new role's default screen. All-or-nothing: no partial switch
	// is ever observable.
	SwitchRole(ctx context.Context, to models.Role) (models.Screen, string, error)
	RequestOTP(ctx context.Context, phone string) error
	// VerifyOTP checks the code after a simulated delay. Cancelling ctx
	// before the delay elapses leaves the session untouched.
	VerifyOTP(ctx context.Context, phone, code string, as models.Role) (string, error)
	LoginWithPassword(ctx context.Context, email, password string) (string, error)
	Guard() *PendingOpGuard
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Nav  *Navigator
	Flow *booking.DraftFlow
	// Snap mirrors the active role to redis so a restart resumes the same
	// perspective. Best-effort; may be nil.
	Snap *redis.Client
	// Delay overrides the simulated OTP-verification latency.
	Delay func() time.Duration

	mu       sync.Mutex
	role     models.Role
	guard    PendingOpGuard
	accounts map[string]account

	// issueToken signs session tokens. Overridable in tests.
	issueToken func(subject, role string, duration time.Duration) (string, error)
}

// NewDefaultSessionService seeds the demo accounts and restores the last
// active role from the snapshot store when one is available.
func NewDefaultSessionService(nav *Navigator, flow *booking.DraftFlow, snap *redis.Client) *DefaultSessionService {
	s := &DefaultSessionService{
		Nav:        nav,
		Flow:       flow,
		Snap:       snap,
		role:       models.RoleClient,
		accounts:   map[string]account{},
		issueToken: utils.GenerateToken,
	}
	s.seedAccount("client@nexus.ch", "nexus-demo", models.RoleClient)
	s.seedAccount("provider@nexus.ch", "nexus-demo", models.RoleProvider)
	s.restoreRole()
	return s
}

func (s *DefaultSessionService) seedAccount(email, password string, role models.Role) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to seed demo account", zap.String("email", email), zap.Error(err))
		return
	}
	s.accounts[email] = account{role: role, hash: hash}
}

func (s *DefaultSessionService) restoreRole() {
	if s.Snap == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	stored, err := s.Snap.Get(ctx, roleSnapshotKey).Result()
	if err != nil {
		return
	}
	if r := models.Role(stored); r.Valid() {
		s.role = r
		s.Nav.Reset(models.DefaultScreen(r))
	}
}

func (s *DefaultSessionService) Role(ctx context.Context) models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *DefaultSessionService) Guard() *PendingOpGuard {
	return &s.guard
}

func (s *DefaultSessionService) SwitchRole(ctx context.Context, to models.Role) (models.Screen, string, error) {
	if !to.Valid() {
		return "", "", fmt.Errorf("unknown role %q", to)
	}

	// Issue the token before touching any state: a signing failure must
	// leave the current role, draft and navigation intact.
	token, err := s.issueToken("session", string(to), 24*time.Hour)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.mu.Lock()
	s.role = to
	s.Flow.Reset()
	start := models.DefaultScreen(to)
	s.Nav.Reset(start)
	s.mu.Unlock()

	if s.Snap != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.Snap.Set(sctx, roleSnapshotKey, string(to), 0).Err(); err != nil {
			utils.GetLogger().Warn("Failed to snapshot session role", zap.Error(err))
		}
		cancel()
	}

	utils.GetLogger().Info("Session role switched", zap.String("role", string(to)))
	return start, token, nil
}

func (s *DefaultSessionService) RequestOTP(ctx context.Context, phone string) error {
	if phone == "" {
		return fmt.Errorf("phone number is required")
	}
	return utils.InitiateLoginOTP(phone)
}

func (s *DefaultSessionService) VerifyOTP(ctx context.Context, phone, code string, as models.Role) (string, error) {
	if !as.Valid() {
		return "", fmt.Errorf("unknown role %q", as)
	}

	// Simulated verification latency, cancellable by the caller tearing the
	// screen down. A cancelled verification must not log the session in.
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay()):
	}

	if err := utils.VerifyLoginOTP(phone, code); err != nil {
		return "", err
	}
	token, err := s.issueToken(phone, string(as), 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

func (s *DefaultSessionService) LoginWithPassword(ctx context.Context, email, password string) (string, error) {
	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("unknown account")
	}
	if err := bcrypt.CompareHashAndPassword(acct.hash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	return s.issueToken(email, string(acct.role), 24*time.Hour)
}

func (s *DefaultSessionService) delay() time.Duration {
	if s.Delay != nil {
		return s.Delay()
	}
	minMs := config.AppConfig.SimulatedDelayMinMs
	maxMs := config.AppConfig.SimulatedDelayMaxMs
	if maxMs <= minMs {
		return time.Duration(minMs) * time.Millisecond
	}
	return time.Duration(minMs+rand.Intn(maxMs-minMs)) * time.Millisecond
}

var _ SessionService = (*DefaultSessionService)(nil)
