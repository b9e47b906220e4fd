package ctxutil

import (
	"context"
	"testing"
)

func TestIdentityFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithIdentity(context.Background(), Identity{UserID: "u-1", Name: "Ada", Email: "ada@example.com", Admin: true})

	id, ok := IdentityFromCtx(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if id.Name != "Ada" || id.Email != "ada@example.com" {
		t.Errorf("unexpected identity %+v", id)
	}

	userID, ok := UserIDFromCtx(ctx)
	if !ok || userID != "u-1" {
		t.Errorf("UserIDFromCtx = %q, %v", userID, ok)
	}
	if !IsAdminCtx(ctx) {
		t.Error("expected admin context")
	}
}

func TestIdentityFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromCtx(context.Background()); ok {
		t.Error("expected no identity in empty context")
	}

	ctx := WithIdentity(context.Background(), Identity{Admin: true})
	if _, ok := IdentityFromCtx(ctx); ok {
		t.Error("identity without user ID must be rejected")
	}
	if IsAdminCtx(ctx) {
		t.Error("identity without user ID must not be admin")
	}
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Errorf("RequestIDFromCtx = %q, want req-42", got)
	}
}
