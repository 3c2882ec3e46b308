package repository

import "strings"

const (
	sessionKeyPrefix     = "mindease_user:"
	accountKeyPrefix     = "mindease_account:"
	appointmentKeyPrefix = "mindease_appointments_"
	moodKeyPrefix        = "mindease_mood_"
	bookingKeyPrefix     = "mindease_booking_"
)

func SessionKey(sessionID string) string { return sessionKeyPrefix + sessionID }

func AccountKey(email string) string { return accountKeyPrefix + normalizeEmail(email) }

func AppointmentsKey(userID string) string { return appointmentKeyPrefix + userID }

func MoodKey(userID string) string { return moodKeyPrefix + userID }

func BookingKey(userID string) string { return bookingKeyPrefix + userID }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
