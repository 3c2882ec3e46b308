package services

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

type theme struct {
	title string
	body  string
}

// Remote placeholder posts are shown with this copy instead of their lorem ipsum.
var themes = []theme{
	{"Coping with Anxiety in Daily Life", "Discover gentle ways to manage anxiety, including breathing techniques, journaling prompts, and grounding exercises that help bring calm to your day."},
	{"The Power of Positive Affirmations", "Learn how to use positive self-talk and affirmations to improve your mood, build self-esteem, and navigate difficult emotions with compassion."},
	{"Creating a Self-Care Routine That Sticks", "Explore how to build a consistent and nurturing self-care practice using mindfulness, creativity, and soft boundaries for emotional well-being."},
	{"Understanding Emotional Burnout", "Burnout is more than being tired. Learn the signs, causes, and healing practices to gently recover and restore emotional balance."},
	{"Mindful Journaling for Mental Clarity", "Discover how daily journaling can help untangle your thoughts, reflect on feelings, and track your emotional growth over time."},
	{"Navigating Grief with Grace", "Grief is not linear. Read tender reflections and gentle guidance on how to feel your way through loss at your own pace."},
	{"Small Joys That Boost Your Mood", "From warm tea to morning sunbeams, discover the small things that can bring light into your mental wellness journey."},
	{"How to Set Healthy Boundaries with Love", "Explore soft but strong strategies for saying no, protecting your energy, and communicating your needs with kindness."},
	{"The Healing Power of Talking to Someone", "Whether it's a therapist or a trusted friend, expressing your feelings out loud can lighten your emotional load."},
	{"You Are Not Alone: Finding Community", "Mental health thrives in connection. Learn ways to feel seen, heard, and supported by people who understand your journey."},
}

var cannedComments = []string{
	"Thank you for sharing this. It really resonated with me.",
	"You're not alone in feeling this way. Stay strong.",
	"This was so uplifting to read. Keep going!",
	"I really needed to hear this today. Grateful for your words.",
	"Mental health is so important. Thanks for highlighting this.",
	"Beautifully expressed. You've inspired me to reflect too.",
	"Sending you love and support. We're in this together.",
	"It's brave of you to open up like this. You matter.",
	"This community helps me feel seen. Thank you for being part of it.",
	"I'm so glad I came across this post. It gave me hope.",
}

type cannedUser struct {
	name  string
	email string
}

var cannedUsers = []cannedUser{
	{"Alex Johnson", "alex.johnson@example.com"},
	{"Sam Taylor", "sam.taylor@example.com"},
	{"Jordan Smith", "jordan.smith@example.com"},
	{"Casey Williams", "casey.w@example.com"},
	{"Taylor Davis", "t.davis@example.com"},
	{"Morgan Wilson", "morgan.w@example.com"},
	{"Jamie Brown", "jamie.b@example.com"},
	{"Riley Miller", "riley.m@example.com"},
	{"Drew Anderson", "drew.a@example.com"},
	{"Cameron Thomas", "cam.thomas@example.com"},
}

var BlogCategories = []string{"anxiety", "depression", "mindfulness", "self-care", "relationships"}

const wordsPerMinute = 200

func themeAt(i int) theme {
	return themes[mod(i, len(themes))]
}

func categoryFor(postID int) string {
	return BlogCategories[mod(postID, len(BlogCategories))]
}

// readingTime is whole minutes at 200 words per minute, at least one.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// relabelComment replaces the remote author and text with canned copy.
func relabelComment(c domain.RemoteComment, userIndex, commentIndex int) domain.Comment {
	u := cannedUsers[mod(userIndex, len(cannedUsers))]
	return domain.Comment{
		ID:     strconv.Itoa(c.ID),
		PostID: strconv.Itoa(c.PostID),
		Name:   u.name,
		Email:  u.email,
		Body:   cannedComments[mod(commentIndex, len(cannedComments))],
		Avatar: domain.AvatarURL(u.name),
	}
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
