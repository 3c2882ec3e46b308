package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// contactUserID is the fixed remote user contact messages are filed under.
const contactUserID = 1

type ContactService struct {
	remote ports.PlaceholderClient
	logger *logging.Logger
}

var _ ports.ContactService = (*ContactService)(nil)

func NewContactService(remote ports.PlaceholderClient, logger *logging.Logger) *ContactService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactService{remote: remote, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	if err := required(
		[2]string{"name", msg.Name},
		[2]string{"email", msg.Email},
		[2]string{"message", msg.Message},
	); err != nil {
		return err
	}
	if !validEmail(msg.Email) {
		return domain.NewValidationError("email", "Please enter a valid email address")
	}

	created, err := s.remote.CreatePost(ctx, ports.NewRemotePost{
		Title:  "Contact from " + msg.Name,
		Body:   msg.Message,
		UserID: contactUserID,
		Email:  msg.Email,
	})
	if err != nil {
		return fmt.Errorf("submit contact form: %w", err)
	}
	s.logger.Info("contact message submitted", "remote_id", created.ID, "subject", msg.Subject)
	return nil
}
