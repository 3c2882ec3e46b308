package handler

import (
	"net/http"

	"github.com/AchilleasB/mindease/wellness-service/internal/adapters/middleware"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/services"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// PageHandler serves the static pages and the contact form.
type PageHandler struct {
	contact ports.ContactService
	logger  *logging.Logger
}

func NewPageHandler(contact ports.ContactService, logger *logging.Logger) *PageHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PageHandler{contact: contact, logger: logger}
}

type aboutView struct {
	Title   string        `json:"title"`
	Mission string        `json:"mission"`
	Values  []aboutValue  `json:"values"`
	Team    []aboutMember `json:"team"`
}

type aboutValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type aboutMember struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type contactView struct {
	Title   string            `json:"title"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Address string            `json:"address"`
	Hours   map[string]string `json:"hours"`
}

var aboutPage = aboutView{
	Title:   "About MindEase",
	Mission: "MindEase makes mental health support accessible, personal and free of stigma.",
	Values: []aboutValue{
		{Title: "Compassion", Description: "We meet every person with empathy and without judgement."},
		{Title: "Accessibility", Description: "Support should be available whenever and wherever it is needed."},
		{Title: "Evidence", Description: "Our tools are grounded in research and clinical practice."},
		{Title: "Privacy", Description: "Your journal and appointments belong to you."},
	},
	Team: []aboutMember{
		{Name: "Dr. Sarah Johnson", Role: "Clinical Director", Avatar: domain.AvatarURL("Sarah Johnson")},
		{Name: "Michael Chen", Role: "Head of Product", Avatar: domain.AvatarURL("Michael Chen")},
		{Name: "Dr. Emily Rodriguez", Role: "Lead Therapist", Avatar: domain.AvatarURL("Emily Rodriguez")},
	},
}

var contactPage = contactView{
	Title:   "Contact Us",
	Email:   "support@mindease.com",
	Phone:   "+1 (555) 123-4567",
	Address: "123 Wellness Street, Mindful City, MC 12345",
	Hours: map[string]string{
		"weekdays": "9:00 - 18:00",
		"saturday": "10:00 - 14:00",
		"sunday":   "Closed",
	},
}

// Home sends visitors to the sign-in page, or to the dashboard once signed in.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if services.Guard(middleware.SessionFromContext(r.Context()), true, false) == services.Render {
		http.Redirect(w, r, services.DefaultPath, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, services.SignInPath, http.StatusSeeOther)
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, aboutPage)
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, contactPage)
}

func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !decode(w, r, h.logger, &msg) {
		return
	}
	if err := h.contact.Submit(r.Context(), msg); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, messageResponse{
		Message: "Thank you for your message. We'll get back to you soon.",
	})
}
