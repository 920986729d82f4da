// ABOUTME: Vault service manages per-user collections of saved summaries
// ABOUTME: Writes for the same user are serialized so list order stays append-only

package vault

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"summaries-app-api/core/domain"
	"summaries-app-api/core/errors"
	"summaries-app-api/core/interfaces"
)

const maxSlugChars = 50

var slugNonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Service manages vault items backed by a pluggable store
type Service struct {
	store  interfaces.VaultStore
	logger interfaces.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	idMu   sync.Mutex
	lastID int64
}

// NewService creates a new vault service instance
func NewService(store interfaces.VaultStore, logger interfaces.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// ListItems returns all items for the user in insertion order.
// An unknown user yields an empty list, not an error.
func (s *Service) ListItems(ctx context.Context, userID string) ([]domain.VaultItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &errors.ValidationError{Field: "userId", Message: "user ID is required"}
	}

	items, err := s.store.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.WrapError(err, "failed to list vault items")
	}
	if items == nil {
		items = []domain.VaultItem{}
	}
	return items, nil
}

// SaveItem appends a new item to the user's vault and returns it with
// its assigned ID and timestamps.
func (s *Service) SaveItem(ctx context.Context, userID string, item domain.VaultItem) (domain.VaultItem, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.VaultItem{}, &errors.ValidationError{Field: "userId", Message: "user ID is required"}
	}
	if strings.TrimSpace(item.Topic) == "" {
		return domain.VaultItem{}, &errors.ValidationError{Field: "topic", Message: "topic is required"}
	}
	if strings.TrimSpace(item.Summary) == "" {
		return domain.VaultItem{}, &errors.ValidationError{Field: "summary", Message: "summary is required"}
	}

	now := time.Now().UTC()
	item.ID = s.nextID(now)
	item.CreatedAt = now.Format(time.RFC3339)
	item.UpdatedAt = item.CreatedAt
	if item.Sources == nil {
		item.Sources = []domain.SourceRef{}
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.AppendItem(ctx, userID, item); err != nil {
		return domain.VaultItem{}, errors.WrapError(err, "failed to save vault item")
	}

	if s.logger != nil {
		s.logger.Info("Saved vault item", map[string]interface{}{
			"user_id": userID,
			"item_id": item.ID,
		})
	}
	return item, nil
}

// GetItem returns a single item by ID
func (s *Service) GetItem(ctx context.Context, userID, itemID string) (domain.VaultItem, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.VaultItem{}, &errors.ValidationError{Field: "userId", Message: "user ID is required"}
	}
	if strings.TrimSpace(itemID) == "" {
		return domain.VaultItem{}, &errors.ValidationError{Field: "itemId", Message: "item ID is required"}
	}

	items, err := s.store.ListItems(ctx, userID)
	if err != nil {
		return domain.VaultItem{}, errors.WrapError(err, "failed to read vault items")
	}
	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return domain.VaultItem{}, &errors.NotFoundError{Resource: "vault item", ID: itemID}
}

// DeleteItem removes an item from the user's vault. Deleting an ID that
// does not exist is not an error.
func (s *Service) DeleteItem(ctx context.Context, userID, itemID string) error {
	if strings.TrimSpace(userID) == "" {
		return &errors.ValidationError{Field: "userId", Message: "user ID is required"}
	}
	if strings.TrimSpace(itemID) == "" {
		return &errors.ValidationError{Field: "itemId", Message: "item ID is required"}
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.DeleteItem(ctx, userID, itemID); err != nil {
		return errors.WrapError(err, "failed to delete vault item")
	}
	return nil
}

// FormatFilename builds a download filename from a topic: a lowercased
// slug capped at 50 characters, followed by today's date and extension.
func FormatFilename(topic, ext string) string {
	slug := strings.ToLower(strings.TrimSpace(topic))
	slug = slugNonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugChars {
		slug = strings.Trim(slug[:maxSlugChars], "-")
	}
	if slug == "" {
		slug = "summary"
	}
	return fmt.Sprintf("%s-%s.%s", slug, time.Now().UTC().Format("2006-01-02"), ext)
}

// nextID returns a millisecond timestamp as a decimal string, bumped
// when two saves land on the same millisecond.
func (s *Service) nextID(now time.Time) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return fmt.Sprintf("%d", id)
}

// userLock returns the mutex serializing writes for one user
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
