package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type MoodEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Mood      int       `json:"mood"`
	Anxiety   int       `json:"anxiety"`
	Sleep     int       `json:"sleep"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

type MoodInput struct {
	Date    string `json:"date"`
	Mood    int    `json:"mood"`
	Anxiety int    `json:"anxiety"`
	Sleep   int    `json:"sleep"`
	Notes   string `json:"notes"`
}

type MoodSummary struct {
	Entries        int     `json:"entries"`
	AverageMood    float64 `json:"averageMood"`
	AverageAnxiety float64 `json:"averageAnxiety"`
	AverageSleep   float64 `json:"averageSleep"`
}
