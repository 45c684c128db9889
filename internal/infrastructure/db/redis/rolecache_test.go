package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

type fakeStore struct {
	entries map[string][]byte
	sets    int
	dels    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string][]byte{}}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	raw, ok := s.entries[key]
	if !ok {
		return nil, errCacheMiss
	}
	return raw, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.sets++
	s.entries[key] = value
	return nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	s.dels++
	delete(s.entries, key)
	return nil
}

type countingRoleRepo struct {
	roles map[uuid.UUID]domain.Role
	finds int
}

func newCountingRoleRepo(roles ...domain.Role) *countingRoleRepo {
	r := &countingRoleRepo{roles: map[uuid.UUID]domain.Role{}}
	for _, role := range roles {
		r.roles[role.UUID] = role
	}
	return r
}

func (r *countingRoleRepo) FindByUUID(_ context.Context, id uuid.UUID) (*domain.Role, error) {
	r.finds++
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &role, nil
}

func (r *countingRoleRepo) List(_ context.Context, _ ports.RoleFilter) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *countingRoleRepo) NextOrdinal(_ context.Context) (int, error) {
	return len(r.roles), nil
}

func (r *countingRoleRepo) Create(_ context.Context, role *domain.Role) error {
	r.roles[role.UUID] = *role
	return nil
}

func (r *countingRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.UUID]; !ok {
		return domain.ErrRoleNotFound
	}
	r.roles[role.UUID] = *role
	return nil
}

func (r *countingRoleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

func testRole() domain.Role {
	return domain.Role{UUID: uuid.New(), Name: "gerente", Ordinal: 1, Project: true}
}

func TestRoleCache_MissThenHit(t *testing.T) {
	ctx := context.Background()
	role := testRole()
	repo := newCountingRoleRepo(role)
	store := newFakeStore()
	cache := &RoleCache{inner: repo, store: store}

	got, err := cache.FindByUUID(ctx, role.UUID)
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if got.Name != "gerente" {
		t.Fatalf("unexpected role: %+v", got)
	}
	if repo.finds != 1 || store.sets != 1 {
		t.Fatalf("expected one db find and one cache fill, got finds=%d sets=%d", repo.finds, store.sets)
	}

	got, err = cache.FindByUUID(ctx, role.UUID)
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if !got.Project {
		t.Fatalf("cached role lost its flags: %+v", got)
	}
	if repo.finds != 1 {
		t.Fatalf("second lookup must be served from cache, db finds=%d", repo.finds)
	}
}

func TestRoleCache_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	role := testRole()
	repo := newCountingRoleRepo(role)
	store := newFakeStore()
	cache := &RoleCache{inner: repo, store: store}

	if _, err := cache.FindByUUID(ctx, role.UUID); err != nil {
		t.Fatalf("prime: %v", err)
	}

	role.Project = false
	role.Financial = true
	if err := cache.Update(ctx, &role); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatal("update must drop the cached entry")
	}

	got, err := cache.FindByUUID(ctx, role.UUID)
	if err != nil {
		t.Fatalf("lookup after update: %v", err)
	}
	if got.Project || !got.Financial {
		t.Fatalf("stale flags served after update: %+v", got)
	}
}

func TestRoleCache_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	role := testRole()
	repo := newCountingRoleRepo(role)
	store := newFakeStore()
	cache := &RoleCache{inner: repo, store: store}

	if _, err := cache.FindByUUID(ctx, role.UUID); err != nil {
		t.Fatalf("prime: %v", err)
	}

	if err := cache.Delete(ctx, role.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatal("delete must drop the cached entry")
	}

	if _, err := cache.FindByUUID(ctx, role.UUID); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound after delete, got %v", err)
	}
}

func TestRoleCache_FailedMutationKeepsEntry(t *testing.T) {
	ctx := context.Background()
	role := testRole()
	repo := newCountingRoleRepo(role)
	store := newFakeStore()
	cache := &RoleCache{inner: repo, store: store}

	if _, err := cache.FindByUUID(ctx, role.UUID); err != nil {
		t.Fatalf("prime: %v", err)
	}

	ghost := testRole()
	if err := cache.Update(ctx, &ghost); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if len(store.entries) != 1 {
		t.Fatal("a failed mutation must not touch unrelated cache entries")
	}
}

func TestRoleCache_CorruptEntryFallsBack(t *testing.T) {
	ctx := context.Background()
	role := testRole()
	repo := newCountingRoleRepo(role)
	store := newFakeStore()
	cache := &RoleCache{inner: repo, store: store}

	store.entries["role:"+role.UUID.String()] = []byte("{not json")

	got, err := cache.FindByUUID(ctx, role.UUID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Name != "gerente" {
		t.Fatalf("unexpected role: %+v", got)
	}
	if repo.finds != 1 {
		t.Fatalf("corrupt entry must fall back to the db, finds=%d", repo.finds)
	}
	if store.dels != 1 {
		t.Fatalf("corrupt entry must be dropped, dels=%d", store.dels)
	}
	if _, err := cache.FindByUUID(ctx, role.UUID); err != nil || repo.finds != 1 {
		t.Fatalf("repopulated entry must serve the next lookup, err=%v finds=%d", err, repo.finds)
	}
}
