package models

import "testing"

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleWorker, true},
		{Role("manager"), false},
		{Role(""), false},
		{Role("Admin"), false}, // roles are a closed set, not case-folded strings
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name:    "valid user",
			user:    User{Username: "jgonzalez", Email: "j@example.com", Role: RoleWorker},
			wantErr: false,
		},
		{
			name:    "empty email is allowed",
			user:    User{Username: "jgonzalez", Role: RoleWorker},
			wantErr: false,
		},
		{
			name:    "missing username",
			user:    User{Email: "j@example.com", Role: RoleWorker},
			wantErr: true,
		},
		{
			name:    "bad email",
			user:    User{Username: "jgonzalez", Email: "not-an-email", Role: RoleWorker},
			wantErr: true,
		},
		{
			name:    "bad role",
			user:    User{Username: "jgonzalez", Role: "boss"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UserCreateRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     UserCreateRequest{Username: "worker1", Password: "supersecret", Role: RoleWorker},
			wantErr: false,
		},
		{
			name:    "short password",
			req:     UserCreateRequest{Username: "worker1", Password: "short", Role: RoleWorker},
			wantErr: true,
		},
		{
			name:    "missing role",
			req:     UserCreateRequest{Username: "worker1", Password: "supersecret"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
