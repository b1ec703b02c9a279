package impl

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/usecase"
)

const maxNameLength = 50

// regNoPattern matches exactly seven decimal digits, the university
// registration number format.
var regNoPattern = regexp.MustCompile(`^[0-9]{7}$`)

type sessionService struct {
	identityRepo repository.IdentityRepository
	notifier     usecase.NotificationUsecase

	mu     sync.Mutex
	active *entity.Identity
	// loaded marks that storage has been consulted once; after that the
	// in-memory state is authoritative.
	loaded bool
}

// NewSessionUsecase creates a new session usecase instance
func NewSessionUsecase(
	identityRepo repository.IdentityRepository,
	notifier usecase.NotificationUsecase,
) usecase.SessionUsecase {
	return &sessionService{
		identityRepo: identityRepo,
		notifier:     notifier,
	}
}

// Login validates the form fields, persists the identity and makes it the
// active one. A previous identity is overwritten.
func (s *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Identity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, domainerrors.ErrInvalidName
	}
	if !regNoPattern.MatchString(input.RegNo) {
		return nil, domainerrors.ErrInvalidRegNo
	}

	identity := &entity.Identity{Name: name, RegNo: input.RegNo}
	if err := s.identityRepo.Save(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "save identity")
	}

	s.mu.Lock()
	s.active = identity
	s.loaded = true
	s.mu.Unlock()

	s.notifier.Push(entity.NotificationSuccess, fmt.Sprintf("Welcome, %s!", identity.Name))

	return identity, nil
}

// Logout clears the stored and active identity. Calling it while logged out
// is a no-op.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	hadIdentity := s.active != nil
	s.active = nil
	s.loaded = true
	s.mu.Unlock()

	if err := s.identityRepo.Delete(ctx); err != nil {
		return errors.Wrap(err, "delete identity")
	}

	if hadIdentity {
		s.notifier.Push(entity.NotificationInfo, "You have been logged out")
	}

	return nil
}

// Current returns the active identity, restoring it from storage on first
// use. A stored record that no longer passes the format rules is discarded
// rather than restored.
func (s *sessionService) Current(ctx context.Context) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		identity, err := s.identityRepo.Load(ctx)
		switch {
		case err == nil:
			if wellFormed(identity) {
				s.active = identity
			}
		case errors.Is(err, repository.ErrIdentityNotFound):
			// nobody logged in
		default:
			return nil, errors.Wrap(err, "load identity")
		}
		s.loaded = true
	}

	if s.active == nil {
		return nil, domainerrors.ErrIdentityNotFound
	}
	return s.active, nil
}

func wellFormed(identity *entity.Identity) bool {
	name := strings.TrimSpace(identity.Name)
	return name != "" && len(name) <= maxNameLength && regNoPattern.MatchString(identity.RegNo)
}
