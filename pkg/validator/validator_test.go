package validator

import "testing"

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Status string `validate:"required,oneof=pending scheduled canceled completed rescheduled"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{"valid", sampleRequest{Email: "a@example.com", Status: "pending"}, false},
		{"missing email", sampleRequest{Status: "pending"}, true},
		{"bad email", sampleRequest{Email: "not-an-email", Status: "pending"}, true},
		{"status outside enum", sampleRequest{Email: "a@example.com", Status: "archived"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "bad", Status: "archived"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", formatted["Email"])
	}
	if formatted["Status"] != "Status must be one of: pending scheduled canceled completed rescheduled" {
		t.Errorf("Status message = %q", formatted["Status"])
	}
}
