package services

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const dashboardListSize = 3

type DashboardService struct {
	mood    ports.MoodService
	booking ports.BookingService
	blog    ports.BlogService
	logger  *logging.Logger
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(mood ports.MoodService, booking ports.BookingService, blog ports.BlogService, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{mood: mood, booking: booking, blog: blog, logger: logger}
}

// Overview assembles the dashboard. A blog failure degrades to an empty list.
func (s *DashboardService) Overview(ctx context.Context, user domain.Identity) (*ports.Dashboard, error) {
	entries, err := s.mood.Entries(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.booking.Upcoming(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	d := &ports.Dashboard{
		User:                 user,
		MoodTrend:            Trend(entries, DashboardTrendWindow),
		UpcomingAppointments: upcoming[:min(dashboardListSize, len(upcoming))],
		BlogPosts:            []domain.BlogPost{},
	}

	posts, err := s.blog.Posts(ctx, dashboardListSize, "", "")
	if err != nil {
		s.logger.Warn("dashboard blog posts unavailable", "error", err)
		d.BlogError = "Could not load wellness articles right now"
		return d, nil
	}
	d.BlogPosts = posts[:min(dashboardListSize, len(posts))]
	return d, nil
}
