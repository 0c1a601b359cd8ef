package models

import "testing"

func TestValidateSeatID(t *testing.T) {
	tests := []struct {
		name    string
		seatID  string
		wantErr bool
	}{
		{
			name:   "numeric seat",
			seatID: "12",
		},
		{
			name:   "row letter seat",
			seatID: "B7",
		},
		{
			name:    "empty seat",
			seatID:  "",
			wantErr: true,
		},
		{
			name:    "whitespace seat",
			seatID:  "   ",
			wantErr: true,
		},
		{
			name:    "too long",
			seatID:  "12345678901",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeatID(tt.seatID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSeatID(%q) error = %v, wantErr %v", tt.seatID, err, tt.wantErr)
			}
		})
	}
}

func TestSeat_Validate(t *testing.T) {
	seat := &Seat{ID: "12", Price: 1000}
	if err := seat.Validate(); err != nil {
		t.Errorf("Seat.Validate() unexpected error = %v", err)
	}

	negative := &Seat{ID: "12", Price: -1}
	if err := negative.Validate(); err == nil {
		t.Error("Seat.Validate() expected error for negative price")
	}
}
