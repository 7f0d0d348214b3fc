package service

import (
	"context"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// DashboardStats aggregates the counts shown on the analytics page.
type DashboardStats struct {
	TicketsByStatus   map[domain.TicketStatus]int64
	TicketsByPriority map[domain.TicketPriority]int64
	TicketsCreated    int64
	WindowDays        int
	PublishedArticles int
	DraftArticles     int
}

// StatsService produces read-only dashboard aggregates. Each figure is
// a single SQL aggregation; nothing is cached.
type StatsService struct {
	tickets  repository.TicketRepository
	articles repository.ArticleRepository
}

// NewStatsService constructs the service.
func NewStatsService(tickets repository.TicketRepository, articles repository.ArticleRepository) *StatsService {
	return &StatsService{tickets: tickets, articles: articles}
}

// Dashboard computes counters for the trailing windowDays window.
func (s *StatsService) Dashboard(ctx context.Context, windowDays int) (*DashboardStats, error) {
	if windowDays <= 0 {
		windowDays = 30
	}

	byStatus, err := s.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.tickets.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	created, err := s.tickets.CountCreatedSince(ctx, time.Now().AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, err
	}
	articles, err := s.articles.List(ctx, false)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TicketsByStatus:   make(map[domain.TicketStatus]int64, len(byStatus)),
		TicketsByPriority: make(map[domain.TicketPriority]int64, len(byPriority)),
		TicketsCreated:    created,
		WindowDays:        windowDays,
	}
	for _, entry := range byStatus {
		stats.TicketsByStatus[entry.Status] = entry.Count
	}
	for _, entry := range byPriority {
		stats.TicketsByPriority[entry.Priority] = entry.Count
	}
	for i := range articles {
		if articles[i].Published() {
			stats.PublishedArticles++
		} else {
			stats.DraftArticles++
		}
	}
	return stats, nil
}
