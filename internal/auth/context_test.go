package auth

import (
	"context"
	"testing"
)

func TestWithPrincipalAndFromContext(t *testing.T) {
	p := Principal{UserID: 1, SessionID: 3}

	ctx := WithPrincipal(context.Background(), p)
	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected Principal in context")
	}
	if got.UserID != 1 {
		t.Errorf("UserID = %d, want 1", got.UserID)
	}
	if got.SessionID != 3 {
		t.Errorf("SessionID = %d, want 3", got.SessionID)
	}
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	if ok {
		t.Error("expected false for missing Principal")
	}
}

func TestUserID(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{UserID: 42})
	id, ok := UserID(ctx)
	if !ok || id != 42 {
		t.Errorf("UserID = %d, %v, want 42, true", id, ok)
	}
}

func TestUserIDMissing(t *testing.T) {
	if _, ok := UserID(context.Background()); ok {
		t.Error("UserID should report false when no Principal is set")
	}
}
