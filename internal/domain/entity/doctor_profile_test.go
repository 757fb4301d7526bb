package entity

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestScheduleListScan(t *testing.T) {
	raw := []byte(`[{"day":"Monday","time_slots":["09:00","10:00"]}]`)

	var list ScheduleList
	if err := list.Scan(raw); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := ScheduleList{{Day: "Monday", TimeSlots: []string{"09:00", "10:00"}}}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("Scan() = %v, want %v", list, want)
	}
}

func TestScheduleListValueNilBecomesEmptyArray(t *testing.T) {
	var list ScheduleList
	v, err := list.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("Value() = %s, want []", v)
	}
}

func TestScanJSONUnsupportedType(t *testing.T) {
	var list RatingList
	if err := list.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestNewPlaceholderProfile(t *testing.T) {
	userID := uuid.New()
	profile := NewPlaceholderProfile(userID)

	if profile.UserID != userID {
		t.Errorf("UserID = %s, want %s", profile.UserID, userID)
	}
	if profile.Specialization != "General Practice" {
		t.Errorf("Specialization = %q", profile.Specialization)
	}
	if profile.Experience != 1 {
		t.Errorf("Experience = %d, want 1", profile.Experience)
	}
	if profile.TotalAppointments != 0 {
		t.Errorf("TotalAppointments = %d, want 0", profile.TotalAppointments)
	}
	if profile.Schedule == nil || profile.Ratings == nil {
		t.Error("placeholder slices should be initialized")
	}
}
