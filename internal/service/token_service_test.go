package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTokenService(t *testing.T) (*TokenService, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return NewTokenService(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestRevokeMarksTokenUntilExpiry(t *testing.T) {
	svc, mr := newTokenService(t)
	ctx := context.Background()

	if err := svc.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	revoked, err := svc.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("revoked = %v, err = %v", revoked, err)
	}

	// A entrada expira junto com o token.
	mr.FastForward(2 * time.Hour)
	revoked, err = svc.IsRevoked(ctx, "jti-1")
	if err != nil || revoked {
		t.Fatalf("after expiry revoked = %v, err = %v", revoked, err)
	}
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	svc, mr := newTokenService(t)
	ctx := context.Background()

	if err := svc.Revoke(ctx, "jti-velho", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if len(mr.Keys()) != 0 {
		t.Fatalf("expected no keys, got %v", mr.Keys())
	}
}

func TestIsRevokedUnknownToken(t *testing.T) {
	svc, _ := newTokenService(t)
	ctx := context.Background()

	revoked, err := svc.IsRevoked(ctx, "jti-desconhecido")
	if err != nil || revoked {
		t.Fatalf("revoked = %v, err = %v", revoked, err)
	}

	revoked, err = svc.IsRevoked(ctx, "")
	if err != nil || revoked {
		t.Fatalf("empty jti revoked = %v, err = %v", revoked, err)
	}
}
