package domain

import "time"

// Records returned by the remote placeholder service, before relabeling.

type RemotePost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type RemoteUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RemoteComment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

type Author struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
}

type BlogPost struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Category    string `json:"category"`
	ReadingTime int    `json:"readingTime"`
	Author      Author `json:"author"`
}

type Comment struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
	Avatar string `json:"avatar"`
}

type CommunityPost struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	UserID   string    `json:"userId,omitempty"`
	Author   Author    `json:"author"`
	Comments []Comment `json:"comments"`
	Likes    int       `json:"likes"`
	Date     time.Time `json:"date"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// ManagedUser is a directory entry on the admin users page.
type ManagedUser struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Avatar         string     `json:"avatar"`
	Role           Role       `json:"role"`
	Status         UserStatus `json:"status"`
	LastActive     time.Time  `json:"lastActive"`
	RegisteredDate time.Time  `json:"registeredDate"`
}

type MonthlyUsers struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type DailyMood struct {
	Name      string `json:"name"`
	Excellent int    `json:"excellent"`
	Good      int    `json:"good"`
	Neutral   int    `json:"neutral"`
	Poor      int    `json:"poor"`
	Bad       int    `json:"bad"`
}

type SystemAnalytics struct {
	UserCount   int `json:"userCount"`
	ActiveUsers int `json:"activeUsers"`
	Appointment struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Upcoming  int `json:"upcoming"`
		Cancelled int `json:"cancelled"`
	} `json:"appointments"`
	Mood struct {
		Excellent int `json:"excellent"`
		Good      int `json:"good"`
		Neutral   int `json:"neutral"`
		Poor      int `json:"poor"`
		Bad       int `json:"bad"`
	} `json:"mood"`
	BlogPosts        int            `json:"blogPosts"`
	CommunityPosts   int            `json:"communityPosts"`
	UserGrowth       []MonthlyUsers `json:"userGrowth"`
	MoodDistribution []DailyMood    `json:"moodDistribution"`
}
