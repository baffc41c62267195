// Package mocks provides in-memory implementations of the repository and
// session interfaces so services and handlers can be tested without postgres
// or redis. The fakes mirror the persistence layer's contract: absent rows
// surface as pgx.ErrNoRows and deleting a referenced status fails with
// repository.ErrProtected.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldops/installation-service/internal/domain"
	"github.com/fieldops/installation-service/internal/repository"
)

// Store holds shared in-memory tables.
type Store struct {
	mu                 sync.RWMutex
	users              map[string]*domain.User
	statuses           map[int64]*domain.Status
	installations      map[int64]*domain.Installation
	nextStatusID       int64
	nextInstallationID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*domain.User),
		statuses:      make(map[int64]*domain.Status),
		installations: make(map[int64]*domain.Installation),
	}
}

// Users returns a repository view over the shared tables.
func (s *Store) Users() repository.UserRepository {
	return &userRepoMock{store: s}
}

// Statuses returns a repository view over the shared tables.
func (s *Store) Statuses() repository.StatusRepository {
	return &statusRepoMock{store: s}
}

// Installations returns a repository view over the shared tables.
func (s *Store) Installations() repository.InstallationRepository {
	return &installationRepoMock{store: s}
}

// StatusCount reports the number of status rows, for mutation checks.
func (s *Store) StatusCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.statuses)
}

// InstallationCount reports the number of installation rows.
func (s *Store) InstallationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.installations)
}

// UserCount reports the number of user rows.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

type userRepoMock struct {
	store *Store
}

func (m *userRepoMock) Create(_ context.Context, user *domain.User) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	m.store.users[user.ID] = &clone
	return nil
}

func (m *userRepoMock) Update(_ context.Context, user *domain.User) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, ok := m.store.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = time.Now()
	clone := *user
	m.store.users[user.ID] = &clone
	return nil
}

func (m *userRepoMock) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	user, ok := m.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (m *userRepoMock) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for _, user := range m.store.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type statusRepoMock struct {
	store *Store
}

func (m *statusRepoMock) Create(_ context.Context, status *domain.Status) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.nextStatusID++
	status.ID = m.store.nextStatusID
	status.Date = time.Now()
	clone := *status
	m.store.statuses[status.ID] = &clone
	return nil
}

func (m *statusRepoMock) Update(_ context.Context, status *domain.Status) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	existing, ok := m.store.statuses[status.ID]
	if !ok || existing.UserID != status.UserID {
		return pgx.ErrNoRows
	}
	status.Date = time.Now()
	clone := *status
	m.store.statuses[status.ID] = &clone
	return nil
}

func (m *statusRepoMock) GetByOwner(_ context.Context, id int64, userID string) (*domain.Status, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	status, ok := m.store.statuses[id]
	if !ok || status.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *status
	return &clone, nil
}

func (m *statusRepoMock) ListByOwner(_ context.Context, userID string) ([]domain.Status, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	var result []domain.Status
	for _, status := range m.store.statuses {
		if status.UserID == userID {
			result = append(result, *status)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Label > result[j].Label
	})
	return result, nil
}

func (m *statusRepoMock) DeleteByOwner(_ context.Context, id int64, userID string) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	status, ok := m.store.statuses[id]
	if !ok || status.UserID != userID {
		return pgx.ErrNoRows
	}
	for _, installation := range m.store.installations {
		if installation.StatusID != nil && *installation.StatusID == id {
			return repository.ErrProtected
		}
	}
	delete(m.store.statuses, id)
	return nil
}

type installationRepoMock struct {
	store *Store
}

func (m *installationRepoMock) Create(_ context.Context, installation *domain.Installation) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.nextInstallationID++
	installation.ID = m.store.nextInstallationID
	now := time.Now()
	if installation.DateCreated.IsZero() {
		installation.DateCreated = now
	}
	installation.DateModified = now
	clone := *installation
	m.store.installations[installation.ID] = &clone
	return nil
}

func (m *installationRepoMock) Update(_ context.Context, installation *domain.Installation) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	existing, ok := m.store.installations[installation.ID]
	if !ok || existing.UserID != installation.UserID {
		return pgx.ErrNoRows
	}
	installation.DateModified = time.Now()
	clone := *installation
	m.store.installations[installation.ID] = &clone
	return nil
}

func (m *installationRepoMock) GetByOwner(_ context.Context, id int64, userID string) (*domain.Installation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	installation, ok := m.store.installations[id]
	if !ok || installation.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *installation
	return &clone, nil
}

func (m *installationRepoMock) ListByOwner(_ context.Context, userID string) ([]domain.Installation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	var result []domain.Installation
	for _, installation := range m.store.installations {
		if installation.UserID == userID {
			result = append(result, *installation)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *installationRepoMock) DeleteByOwner(_ context.Context, id int64, userID string) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	installation, ok := m.store.installations[id]
	if !ok || installation.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.store.installations, id)
	return nil
}
