package user

import (
	"testing"

	"github.com/baechuer/board-service/internal/domain"
)

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}

func requireErrKind(t *testing.T, err error, kind domain.ErrKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error kind=%q, got nil", kind)
	}
	if got := domain.KindOf(err); got != kind {
		t.Fatalf("expected kind=%q, got %q (err=%v)", kind, got, err)
	}
}
