package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/board-service/internal/domain"
)

func registerLeo(t *testing.T, svc *Service) RegisterResult {
	t.Helper()
	res, err := svc.Register(context.Background(), &RegisterInput{
		Name:            "Leo",
		Email:           "Leo@Example.com ",
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
	})
	require.NoError(t, err)
	return res
}

func TestLogin_Success_NormalizedEmail(t *testing.T) {
	t.Parallel()

	svc, deps := newSvcForTest()
	reg := registerLeo(t, svc)

	res, err := svc.Login(context.Background(), &LoginInput{Email: "leo@example.com", Password: "abc12345"})
	require.NoError(t, err)

	assert.Equal(t, reg.UserID, res.UserID)
	assert.Equal(t, "Leo", res.DisplayName)
	assert.Equal(t, domain.RoleUser, res.Role)
	assert.Equal(t, "tok-Leo", res.AccessToken)

	require.Len(t, deps.issuer.calls, 1)
	assert.Equal(t, reg.UserID, deps.issuer.calls[0].id)
	assert.Equal(t, domain.RoleUser, deps.issuer.calls[0].role)
}

func TestLogin_MixedCaseEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newSvcForTest()
	registerLeo(t, svc)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "  LEO@EXAMPLE.COM", Password: "abc12345"})
	require.NoError(t, err)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, deps := newSvcForTest()
	registerLeo(t, svc)

	_, wrongPw := svc.Login(context.Background(), &LoginInput{Email: "leo@example.com", Password: "wrong1234"})
	_, noUser := svc.Login(context.Background(), &LoginInput{Email: "ghost@example.com", Password: "abc12345"})

	requireErrCode(t, wrongPw, domain.CodeAuthenticationFailed)
	requireErrCode(t, noUser, domain.CodeAuthenticationFailed)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
	assert.Empty(t, deps.issuer.calls)
}

func TestLogin_ValidationCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   LoginInput
		code string
	}{
		{"blank password", LoginInput{Email: "leo@example.com", Password: " "}, "PASSWORD_REQUIRED"},
		{"missing password beats bad email", LoginInput{Email: "nope", Password: ""}, "PASSWORD_REQUIRED"},
		{"bad email", LoginInput{Email: "not-an-email", Password: "abc12345"}, "INVALID_EMAIL"},
		{"missing email", LoginInput{Email: "", Password: "abc12345"}, "EMAIL_REQUIRED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newSvcForTest()
			in := tc.in
			_, err := svc.Login(context.Background(), &in)
			requireErrKind(t, err, domain.KindValidation)
			requireErrCode(t, err, tc.code)
		})
	}
}

func TestLogin_NilInput(t *testing.T) {
	t.Parallel()

	svc, _ := newSvcForTest()
	_, err := svc.Login(context.Background(), nil)
	requireErrCode(t, err, domain.CodeValidationFailed)
}

func TestLogin_RepoFailure_IsInternal(t *testing.T) {
	t.Parallel()

	svc, deps := newSvcForTest()
	deps.repo.getByEmailErr = errBoom

	_, err := svc.Login(context.Background(), &LoginInput{Email: "leo@example.com", Password: "abc12345"})
	requireErrCode(t, err, domain.CodeInternalError)
}

func TestLogin_SignFailure_IsInternal(t *testing.T) {
	t.Parallel()

	svc, deps := newSvcForTest()
	registerLeo(t, svc)
	deps.issuer.err = errBoom

	_, err := svc.Login(context.Background(), &LoginInput{Email: "leo@example.com", Password: "abc12345"})
	requireErrCode(t, err, domain.CodeInternalError)
}

func TestLogin_Audits(t *testing.T) {
	t.Parallel()

	svc, deps := newSvcForTest()
	registerLeo(t, svc)

	_, _ = svc.Login(context.Background(), &LoginInput{Email: "leo@example.com", Password: "wrong1234"})
	_, _ = svc.Login(context.Background(), &LoginInput{Email: "leo@example.com", Password: "abc12345"})

	var actions []string
	for _, a := range *deps.audits {
		actions = append(actions, a.action)
	}
	assert.Equal(t, []string{"user_registered", "login_failed", "login_success"}, actions)
	assert.Equal(t, "bad_password", (*deps.audits)[1].fields["reason"])
}
