package entity

import "testing"

func TestClassifyRegistration(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		doctorDomain string
		wantRole     string
		wantApproved bool
	}{
		{
			name:         "customer email",
			email:        "alice@example.com",
			doctorDomain: "@doctor.com",
			wantRole:     RoleCustomer,
			wantApproved: true,
		},
		{
			name:         "doctor domain email",
			email:        "drbob@doctor.com",
			doctorDomain: "@doctor.com",
			wantRole:     RoleDoctor,
			wantApproved: false,
		},
		{
			name:         "doctor domain as substring only",
			email:        "someone@doctor.com.example.org",
			doctorDomain: "@doctor.com",
			wantRole:     RoleCustomer,
			wantApproved: true,
		},
		{
			name:         "empty doctor domain never matches",
			email:        "drbob@doctor.com",
			doctorDomain: "",
			wantRole:     RoleCustomer,
			wantApproved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, approved := ClassifyRegistration(tt.email, tt.doctorDomain)
			if role != tt.wantRole {
				t.Errorf("ClassifyRegistration() role = %q, want %q", role, tt.wantRole)
			}
			if approved != tt.wantApproved {
				t.Errorf("ClassifyRegistration() approved = %v, want %v", approved, tt.wantApproved)
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice", "alice"},
		{"  Bob  ", "bob"},
		{"CHARLIE99", "charlie99"},
		{"already-lower", "already-lower"},
	}

	for _, tt := range tests {
		if got := NormalizeUsername(tt.in); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserIsBookable(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"approved doctor", User{Role: RoleDoctor, IsApproved: true}, true},
		{"pending doctor", User{Role: RoleDoctor, IsApproved: false}, false},
		{"approved customer", User{Role: RoleCustomer, IsApproved: true}, false},
		{"admin", User{Role: RoleAdmin, IsApproved: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsBookable(); got != tt.want {
				t.Errorf("IsBookable() = %v, want %v", got, tt.want)
			}
		})
	}
}
