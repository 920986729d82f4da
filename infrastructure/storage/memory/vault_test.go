package memory

import (
	"context"
	"testing"

	"summaries-app-api/core/domain"
)

func TestVaultStore_ListItems_EmptyForUnknownUser(t *testing.T) {
	store := NewVaultStore()

	items, err := store.ListItems(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestVaultStore_AppendAndList(t *testing.T) {
	store := NewVaultStore()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		err := store.AppendItem(ctx, "user-1", domain.VaultItem{ID: id, Topic: "t", Summary: "s"})
		if err != nil {
			t.Fatalf("AppendItem returned error: %v", err)
		}
	}

	items, err := store.ListItems(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, id := range []string{"1", "2", "3"} {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %s, want %s", i, items[i].ID, id)
		}
	}
}

func TestVaultStore_UsersAreIsolated(t *testing.T) {
	store := NewVaultStore()
	ctx := context.Background()

	store.AppendItem(ctx, "user-1", domain.VaultItem{ID: "1", Topic: "t", Summary: "s"})
	store.AppendItem(ctx, "user-2", domain.VaultItem{ID: "2", Topic: "t", Summary: "s"})

	items, _ := store.ListItems(ctx, "user-1")
	if len(items) != 1 || items[0].ID != "1" {
		t.Errorf("user-1 sees %v", items)
	}
}

func TestVaultStore_DeleteItem(t *testing.T) {
	store := NewVaultStore()
	ctx := context.Background()

	store.AppendItem(ctx, "user-1", domain.VaultItem{ID: "1", Topic: "t", Summary: "s"})
	store.AppendItem(ctx, "user-1", domain.VaultItem{ID: "2", Topic: "t", Summary: "s"})

	if err := store.DeleteItem(ctx, "user-1", "1"); err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}

	items, _ := store.ListItems(ctx, "user-1")
	if len(items) != 1 || items[0].ID != "2" {
		t.Errorf("got %v, want only item 2", items)
	}
}

func TestVaultStore_DeleteUnknownIDIsNoOp(t *testing.T) {
	store := NewVaultStore()
	ctx := context.Background()

	store.AppendItem(ctx, "user-1", domain.VaultItem{ID: "1", Topic: "t", Summary: "s"})

	if err := store.DeleteItem(ctx, "user-1", "999"); err != nil {
		t.Errorf("DeleteItem returned error: %v", err)
	}

	items, _ := store.ListItems(ctx, "user-1")
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestVaultStore_ListReturnsCopy(t *testing.T) {
	store := NewVaultStore()
	ctx := context.Background()

	store.AppendItem(ctx, "user-1", domain.VaultItem{ID: "1", Topic: "original", Summary: "s"})

	items, _ := store.ListItems(ctx, "user-1")
	items[0].Topic = "mutated"

	again, _ := store.ListItems(ctx, "user-1")
	if again[0].Topic != "original" {
		t.Errorf("stored item mutated to %q", again[0].Topic)
	}
}

func TestVaultStore_EmptyUserIDRejected(t *testing.T) {
	store := NewVaultStore()
	ctx := context.Background()

	if _, err := store.ListItems(ctx, ""); err == nil {
		t.Error("ListItems should reject empty user ID")
	}
	if err := store.AppendItem(ctx, "", domain.VaultItem{ID: "1"}); err == nil {
		t.Error("AppendItem should reject empty user ID")
	}
	if err := store.DeleteItem(ctx, "", "1"); err == nil {
		t.Error("DeleteItem should reject empty user ID")
	}
}
