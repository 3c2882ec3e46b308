package services

import (
	"reflect"
	"testing"
)

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		therapistID int
		want        []string
	}{
		{1, []string{"9:00", "9:30", "10:00", "13:00", "13:30", "15:00", "15:30", "16:00"}},
		{2, []string{"9:00", "11:00", "14:00", "14:30", "15:00"}},
		{3, []string{"10:00", "11:00", "11:30", "13:00", "13:30", "14:00", "16:00"}},
	}

	for _, tt := range tests {
		got := AvailableSlots(tt.therapistID)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AvailableSlots(%d) = %v, want %v", tt.therapistID, got, tt.want)
		}
	}
}

func TestAvailableSlots_Deterministic(t *testing.T) {
	for id := 1; id <= 6; id++ {
		first := AvailableSlots(id)
		for i := 0; i < 5; i++ {
			if !reflect.DeepEqual(first, AvailableSlots(id)) {
				t.Fatalf("therapist %d: slots changed between calls", id)
			}
		}
		if len(first) == 0 {
			t.Errorf("therapist %d has no slots", id)
		}
	}
}
