package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is one availability entry in a doctor's weekly schedule.
type ScheduleEntry struct {
	Day       string   `json:"day"`
	TimeSlots []string `json:"time_slots"`
}

// ScheduleList is stored as a single jsonb column.
type ScheduleList []ScheduleEntry

func (s ScheduleList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(ScheduleList{})
	}
	return json.Marshal(s)
}

func (s *ScheduleList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// RatingList holds individual 1-5 ratings, stored as jsonb.
type RatingList []int

func (r RatingList) Value() (driver.Value, error) {
	if r == nil {
		return json.Marshal(RatingList{})
	}
	return json.Marshal(r)
}

func (r *RatingList) Scan(value interface{}) error {
	return scanJSON(value, r)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// DoctorProfile represents doctor-specific profile data, one per doctor user
type DoctorProfile struct {
	UserID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization    string       `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience        int          `gorm:"not null;default:0" json:"experience"`
	Location          string       `gorm:"type:varchar(255)" json:"location"`
	Clinic            string       `gorm:"type:varchar(255)" json:"clinic"`
	PhoneNumber       string       `gorm:"type:varchar(20)" json:"phone_number"`
	Bio               string       `gorm:"type:text" json:"bio,omitempty"`
	Schedule          ScheduleList `gorm:"type:jsonb;not null;default:'[]'" json:"schedule"`
	Ratings           RatingList   `gorm:"type:jsonb;not null;default:'[]'" json:"ratings"`
	TotalAppointments int          `gorm:"not null;default:0" json:"total_appointments"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// NewPlaceholderProfile seeds the profile created alongside a doctor
// registration. The doctor fills in real values through a profile update.
func NewPlaceholderProfile(userID uuid.UUID) *DoctorProfile {
	return &DoctorProfile{
		UserID:         userID,
		Specialization: "General Practice",
		Experience:     1,
		Location:       "Not Specified",
		Clinic:         "Not Specified",
		PhoneNumber:    "Not Specified",
		Bio:            "Doctor profile pending update.",
		Schedule:       ScheduleList{},
		Ratings:        RatingList{},
	}
}
