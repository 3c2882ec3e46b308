package services

import "strconv"

var workingHours = []int{9, 10, 11, 13, 14, 15, 16}

// AvailableSlots returns the bookable times for a therapist. The result depends
// only on the therapist id; the same id always yields the same slots.
func AvailableSlots(therapistID int) []string {
	slots := make([]string, 0, len(workingHours)*2)
	for _, h := range workingHours {
		if (h+therapistID)%3 == 0 {
			continue
		}
		hour := strconv.Itoa(h)
		slots = append(slots, hour+":00")
		if (h+therapistID)%2 == 0 {
			slots = append(slots, hour+":30")
		}
	}
	return slots
}
