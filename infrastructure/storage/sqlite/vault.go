// ABOUTME: SQLite-backed vault store for persistent per-user summary collections
// ABOUTME: Items survive restarts; insertion order is preserved via rowid ordering

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"summaries-app-api/core/domain"

	_ "github.com/mattn/go-sqlite3"
)

// VaultStore implements the VaultStore interface using SQLite
type VaultStore struct {
	db       *sql.DB
	filePath string
}

// NewVaultStore creates a new SQLite vault store
func NewVaultStore(filePath string) (*VaultStore, error) {
	if filePath == "" {
		filePath = "vault.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &VaultStore{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the vault table if it doesn't exist
func (s *VaultStore) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS vault_items (
			user_id TEXT NOT NULL,
			id TEXT NOT NULL,
			topic TEXT NOT NULL,
			summary TEXT NOT NULL,
			sources TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (user_id, id)
		);
		CREATE INDEX IF NOT EXISTS idx_vault_user ON vault_items(user_id);
	`

	_, err := s.db.Exec(query)
	return err
}

// ListItems returns the user's items in insertion order
func (s *VaultStore) ListItems(ctx context.Context, userID string) ([]domain.VaultItem, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	query := `
		SELECT id, topic, summary, sources, created_at, updated_at
		FROM vault_items WHERE user_id = ? ORDER BY rowid
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault items: %w", err)
	}
	defer rows.Close()

	items := []domain.VaultItem{}
	for rows.Next() {
		var item domain.VaultItem
		var sourcesJSON string
		if err := rows.Scan(&item.ID, &item.Topic, &item.Summary, &sourcesJSON, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vault item: %w", err)
		}
		if err := json.Unmarshal([]byte(sourcesJSON), &item.Sources); err != nil {
			return nil, fmt.Errorf("failed to decode sources for item %s: %w", item.ID, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// AppendItem adds an item to the end of the user's vault
func (s *VaultStore) AppendItem(ctx context.Context, userID string, item domain.VaultItem) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}

	sources := item.Sources
	if sources == nil {
		sources = []domain.SourceRef{}
	}
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}

	query := `
		INSERT INTO vault_items (user_id, id, topic, summary, sources, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query, userID, item.ID, item.Topic, item.Summary, string(sourcesJSON), item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vault item: %w", err)
	}

	return nil
}

// DeleteItem removes an item. Deleting an unknown ID is a no-op.
func (s *VaultStore) DeleteItem(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}

	query := "DELETE FROM vault_items WHERE user_id = ? AND id = ?"
	if _, err := s.db.ExecContext(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("failed to delete vault item: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *VaultStore) Close() error {
	return s.db.Close()
}
