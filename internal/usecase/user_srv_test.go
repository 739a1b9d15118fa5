package usecase

import (
	"context"
	"errors"
	"testing"

	"media-review/internal/data/entity"
	"media-review/internal/dto/request"
)

func newTestUserService(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()

	repo := newTestRepository()
	users := repo.User.(*fakeUserRepo)
	return NewUserService(repo, testConfig(), testLogger()), users
}

func TestCreateUserDefaultsToUserRole(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if resp.Role != "user" {
		t.Errorf("Role = %q, want user", resp.Role)
	}

	stored, _ := users.FindByUsername(ctx, "alice")
	if stored == nil {
		t.Fatal("user not stored")
	}
	if !stored.IsActive {
		t.Error("staff-created accounts should be active immediately")
	}
	if stored.IsStaff || stored.IsSuperuser {
		t.Error("regular user should carry no staff flags")
	}
}

func TestCreateUserAdminGetsStaffFlag(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "boss",
		Email:    "boss@example.com",
		Role:     "admin",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	stored, _ := users.FindByUsername(ctx, "boss")
	if !stored.IsStaff {
		t.Error("admin role should set the staff flag")
	}
	if stored.IsSuperuser {
		t.Error("admin role should not set the superuser flag")
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "alice2",
		Email:    "alice@example.com",
	})
	if v, ok := AsValidationError(err); !ok {
		t.Fatalf("duplicate email err = %v, want ValidationError", err)
	} else if _, ok := v.Fields["email"]; !ok {
		t.Errorf("Fields = %v, want an email entry", v.Fields)
	}

	_, err = svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "alice",
		Email:    "other@example.com",
	})
	if v, ok := AsValidationError(err); !ok {
		t.Fatalf("duplicate username err = %v, want ValidationError", err)
	} else if _, ok := v.Fields["username"]; !ok {
		t.Errorf("Fields = %v, want a username entry", v.Fields)
	}
}

func TestUpdateUserRoleChangeAdjustsFlags(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Role:     "admin",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	demoted := "user"
	if _, err := svc.UpdateUserByUsername(ctx, "bob", &request.UpdateUserRequest{Role: &demoted}); err != nil {
		t.Fatalf("UpdateUserByUsername: %v", err)
	}

	stored, _ := users.FindByUsername(ctx, "bob")
	if stored.IsStaff {
		t.Error("demotion to user should clear the staff flag")
	}
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetUserByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteUserByUsername(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "gone",
		Email:    "gone@example.com",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := svc.DeleteUserByUsername(ctx, "gone"); err != nil {
		t.Fatalf("DeleteUserByUsername: %v", err)
	}
	if err := svc.DeleteUserByUsername(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfileCannotChangeRole(t *testing.T) {
	repo := newTestRepository()
	users := repo.User.(*fakeUserRepo)
	svc := NewUserService(repo, testConfig(), testLogger())
	ctx := context.Background()

	callerID := seedUser(t, repo, "selfie", entity.RoleUser)

	bio := "hello"
	resp, err := svc.UpdateProfile(ctx, callerID, &request.UpdateProfileRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if resp.Bio != "hello" {
		t.Errorf("Bio = %q, want hello", resp.Bio)
	}
	if resp.Role != "user" {
		t.Errorf("Role = %q, want user", resp.Role)
	}

	stored, _ := users.FindByID(ctx, callerID)
	if stored.Role != entity.RoleUser {
		t.Errorf("Role = %q, profile updates must not change roles", stored.Role)
	}
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, testConfig(), testLogger())
	ctx := context.Background()

	seedUser(t, repo, "taken", entity.RoleUser)
	callerID := seedUser(t, repo, "caller", entity.RoleUser)

	taken := "taken"
	_, err := svc.UpdateProfile(ctx, callerID, &request.UpdateProfileRequest{Username: &taken})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
