package service

import (
	"log"
	"time"

	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/auth"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/model"
	"github.com/nwtracker/Net-Worth-Tracker-Backend/internal/repository"
)

// SessionService handles the demo-session boundary: creating throwaway demo
// accounts, issuing their cookies, and purging them once expired.
type SessionService struct {
	userRepo *repository.UserRepository
	issuer   *auth.TokenIssuer
}

// NewSessionService creates a new SessionService with the provided dependencies.
func NewSessionService(userRepo *repository.UserRepository, issuer *auth.TokenIssuer) *SessionService {
	return &SessionService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// CreateDemoSession creates a demo user expiring with the token TTL and
// returns the user together with its session token.
func (s *SessionService) CreateDemoSession(displayName, defaultCurrency string) (model.User, string, error) {
	if displayName == "" {
		displayName = "Demo"
	}
	if defaultCurrency == "" {
		defaultCurrency = "ILS"
	}

	expiresAt := time.Now().UTC().Add(s.issuer.TTL())

	user, err := s.userRepo.CreateDemoUser(displayName, defaultCurrency, expiresAt)
	if err != nil {
		return model.User{}, "", err
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	return user, token, nil
}

// GetUser retrieves the user behind a session.
func (s *SessionService) GetUser(userID string) (model.User, error) {
	return s.userRepo.GetUserOnID(userID)
}

// PurgeExpiredDemoUsers removes demo accounts whose expiry has passed,
// cascading over their hierarchy, values and transactions. Run nightly by
// the scheduler.
func (s *SessionService) PurgeExpiredDemoUsers() {
	removed, err := s.userRepo.DeleteExpiredDemoUsers(time.Now().UTC())
	if err != nil {
		log.Printf("demo purge failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("demo purge removed %d expired users", removed)
	}
}
