package usecase

import (
	"context"
	"errors"
	"testing"

	"media-review/internal/dto/request"
	"media-review/pkg/token"
	"media-review/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Code: utils.CodeConfig{Length: 8},
	}
}

func newTestAuthService(t *testing.T) (AuthService, *fakeMailer, *fakeUserRepo) {
	t.Helper()

	repo := newTestRepository()
	users := repo.User.(*fakeUserRepo)

	tokens, err := token.NewManager("0123456789abcdef0123456789abcdef", 24)
	if err != nil {
		t.Fatalf("token.NewManager: %v", err)
	}

	mail := newFakeMailer()
	return NewAuthService(repo, tokens, mail, testConfig(), testLogger()), mail, users
}

func TestRegisterCreatesInactiveAccount(t *testing.T) {
	svc, mail, users := newTestAuthService(t)
	ctx := context.Background()

	err := svc.Register(ctx, &request.RegisterRequest{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := users.FindByEmail(ctx, "new@example.com")
	if err != nil || user == nil {
		t.Fatalf("user not stored: %v", err)
	}

	if user.IsActive {
		t.Error("new account should start inactive")
	}
	if user.Username != "new@example.com" {
		t.Errorf("Username = %q, want the email", user.Username)
	}
	if user.ConfirmationCode == "" {
		t.Error("confirmation code not stored")
	}

	code, ok := mail.sent["new@example.com"]
	if !ok {
		t.Fatal("no activation email sent")
	}
	if utils.EncodeCode(code) != user.ConfirmationCode {
		t.Error("mailed code does not match the stored code")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &request.RegisterRequest{Email: "dup@example.com"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	err := svc.Register(ctx, &request.RegisterRequest{Email: "dup@example.com"})
	v, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := v.Fields["email"]; !ok {
		t.Errorf("Fields = %v, want an email entry", v.Fields)
	}
}

func TestRegisterFailsWhenMailFails(t *testing.T) {
	svc, mail, _ := newTestAuthService(t)
	mail.sendErr = errors.New("smtp down")

	err := svc.Register(context.Background(), &request.RegisterRequest{Email: "x@example.com"})
	if err == nil {
		t.Fatal("expected error when mail dispatch fails")
	}
}

func TestObtainTokenActivatesAccount(t *testing.T) {
	svc, mail, users := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &request.RegisterRequest{Email: "a@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	code := mail.sent["a@example.com"]

	resp, err := svc.ObtainToken(ctx, &request.ObtainTokenRequest{
		Email:            "a@example.com",
		ConfirmationCode: code,
	})
	if err != nil {
		t.Fatalf("ObtainToken: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}

	user, _ := users.FindByEmail(ctx, "a@example.com")
	if !user.IsActive {
		t.Error("account not activated")
	}
}

func TestObtainTokenIsIdempotent(t *testing.T) {
	svc, mail, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &request.RegisterRequest{Email: "b@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	code := mail.sent["b@example.com"]
	req := &request.ObtainTokenRequest{Email: "b@example.com", ConfirmationCode: code}

	if _, err := svc.ObtainToken(ctx, req); err != nil {
		t.Fatalf("first ObtainToken: %v", err)
	}
	if _, err := svc.ObtainToken(ctx, req); err != nil {
		t.Fatalf("second ObtainToken with same code: %v", err)
	}
}

func TestObtainTokenRejectsWrongCode(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, &request.RegisterRequest{Email: "c@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.ObtainToken(ctx, &request.ObtainTokenRequest{
		Email:            "c@example.com",
		ConfirmationCode: "WRONG123",
	})
	v, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := v.Fields["confirmation_code"]; !ok {
		t.Errorf("Fields = %v, want a confirmation_code entry", v.Fields)
	}
}

func TestObtainTokenRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ObtainToken(context.Background(), &request.ObtainTokenRequest{
		Email:            "ghost@example.com",
		ConfirmationCode: "ABCD1234",
	})
	v, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := v.Fields["email"]; !ok {
		t.Errorf("Fields = %v, want an email entry", v.Fields)
	}
}
