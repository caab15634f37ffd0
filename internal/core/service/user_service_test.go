package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

func TestUserService_Update_PromotesRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	created, _ := repo.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com", Role: domain.RoleCustomer})

	role := "admin"
	updated, err := svc.Update(ctx, created.ID, ports.UpdateUserInput{Role: &role})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", updated.Role)
	}
	if updated.Username != "alice" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestUserService_Update_RejectsUnknownRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	created, _ := repo.Create(ctx, &domain.User{Username: "bob", Email: "bob@example.com", Role: domain.RoleCustomer})

	role := "superuser"
	if _, err := svc.Update(ctx, created.ID, ports.UpdateUserInput{Role: &role}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	username := "ghost"
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Username: &username}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	created, _ := repo.Create(ctx, &domain.User{Username: "carol", Email: "carol@example.com", Role: domain.RoleCustomer})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
