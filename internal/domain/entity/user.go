package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role constants
const (
	RoleCustomer = "customer"
	RoleDoctor   = "doctor"
	RoleAdmin    = "admin"
)

// User represents a registered principal (customer, doctor, or admin)
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Username   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Role       string    `gorm:"type:varchar(20);not null;default:'customer';index" json:"role"`
	IsApproved bool      `gorm:"not null;default:false;index" json:"is_approved"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor reports whether the user holds the doctor role.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsBookable reports whether appointments may be booked against this user.
func (u *User) IsBookable() bool {
	return u.Role == RoleDoctor && u.IsApproved
}

// NormalizeUsername folds a username to its stored form.
// Usernames are stored lowercase with surrounding whitespace removed.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ClassifyRegistration derives role and initial approval from the
// registration email. An email ending with doctorDomain registers a doctor
// account that stays unapproved until an admin approves it; everyone else is
// a customer and approved immediately.
func ClassifyRegistration(email, doctorDomain string) (role string, approved bool) {
	if doctorDomain != "" && strings.HasSuffix(email, doctorDomain) {
		return RoleDoctor, false
	}
	return RoleCustomer, true
}
