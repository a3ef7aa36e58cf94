package http_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/baechuer/board-service/internal/application/board"
	"github.com/baechuer/board-service/internal/application/user"
	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/transport/http/response"
)

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode json failed: %v; body=%s", err, string(raw))
	}
}

func mustReadError(t *testing.T, r io.Reader) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	mustReadJSON(t, r, &body)
	return body
}

// ---- fakes ----

type fakeUserService struct {
	regIn  *user.RegisterInput
	regRes user.RegisterResult
	regErr error

	loginIn  *user.LoginInput
	loginRes user.LoginResult
	loginErr error

	regCalls   int
	loginCalls int
}

func (f *fakeUserService) Register(_ context.Context, in *user.RegisterInput) (user.RegisterResult, error) {
	f.regCalls++
	f.regIn = in
	if in == nil {
		return user.RegisterResult{}, domain.ErrValidationFailed("")
	}
	return f.regRes, f.regErr
}

func (f *fakeUserService) Login(_ context.Context, in *user.LoginInput) (user.LoginResult, error) {
	f.loginCalls++
	f.loginIn = in
	if in == nil {
		return user.LoginResult{}, domain.ErrValidationFailed("")
	}
	return f.loginRes, f.loginErr
}

type fakeBoardService struct {
	gotQ  board.ListQuery
	calls int
	page  domain.BoardPage
	err   error
}

func (f *fakeBoardService) List(_ context.Context, q board.ListQuery) (domain.BoardPage, error) {
	f.calls++
	f.gotQ = q
	if err := q.Normalize(); err != nil {
		return domain.BoardPage{}, err
	}
	if f.err != nil {
		return domain.BoardPage{}, f.err
	}
	p := f.page
	p.Page, p.PageSize = q.Page, q.PageSize
	return p, nil
}
