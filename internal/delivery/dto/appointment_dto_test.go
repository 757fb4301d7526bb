package dto

import (
	"encoding/json"
	"testing"
)

// The emergency flag must distinguish "absent" from "explicitly false" and
// reject non-boolean values, since only an explicit boolean may flip it.
func TestUpdateAppointmentStatusRequestEmergencyDecoding(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantNil   bool
		wantValue bool
	}{
		{"absent flag", `{"status":"scheduled"}`, false, true, false},
		{"explicit true", `{"status":"scheduled","is_emergency":true}`, false, false, true},
		{"explicit false", `{"status":"scheduled","is_emergency":false}`, false, false, false},
		{"string value rejected", `{"status":"scheduled","is_emergency":"yes"}`, true, false, false},
		{"numeric value rejected", `{"status":"scheduled","is_emergency":1}`, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateAppointmentStatusRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (req.IsEmergency == nil) != tt.wantNil {
				t.Fatalf("IsEmergency nil = %v, want %v", req.IsEmergency == nil, tt.wantNil)
			}
			if !tt.wantNil && *req.IsEmergency != tt.wantValue {
				t.Errorf("IsEmergency = %v, want %v", *req.IsEmergency, tt.wantValue)
			}
		})
	}
}
