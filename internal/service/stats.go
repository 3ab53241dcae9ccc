package service

import (
	"context"
	"fmt"

	"github.com/linkt-app/linkt-api/internal/domain"
)

const topEventsLimit = 5

type StatsEventRepository interface {
	Count(ctx context.Context) (int64, error)
}

type StatsTicketRepository interface {
	Count(ctx context.Context) (int64, error)
	CountScanned(ctx context.Context) (int64, error)
	TopEventsByTicketCount(ctx context.Context, limit int) ([]domain.EventTicketStat, error)
}

type StatsUserRepository interface {
	CountByType(ctx context.Context, userType string) (int64, error)
}

// StatsService computes the administrator dashboard aggregates on demand.
type StatsService struct {
	eventRepo  StatsEventRepository
	ticketRepo StatsTicketRepository
	userRepo   StatsUserRepository
}

func NewStatsService(eventRepo StatsEventRepository, ticketRepo StatsTicketRepository, userRepo StatsUserRepository) *StatsService {
	return &StatsService{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
	}
}

func (s *StatsService) GetGlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	totalEvents, err := s.eventRepo.Count(ctx)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.eventRepo.Count -> %w", err)
	}

	totalTickets, err := s.ticketRepo.Count(ctx)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.ticketRepo.Count -> %w", err)
	}

	scanned, err := s.ticketRepo.CountScanned(ctx)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.ticketRepo.CountScanned -> %w", err)
	}

	totalStudents, err := s.userRepo.CountByType(ctx, domain.UserTypeStudent)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.userRepo.CountByType -> %w", err)
	}

	totalOrganizers, err := s.userRepo.CountByType(ctx, domain.UserTypeOrganizer)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.userRepo.CountByType -> %w", err)
	}

	topEvents, err := s.ticketRepo.TopEventsByTicketCount(ctx, topEventsLimit)
	if err != nil {
		return domain.GlobalStats{}, fmt.Errorf("s.ticketRepo.TopEventsByTicketCount -> %w", err)
	}

	scanRate := 0.0
	if totalTickets > 0 {
		scanRate = float64(scanned) / float64(totalTickets) * 100
	}

	return domain.GlobalStats{
		TotalEvents:           totalEvents,
		TotalTickets:          totalTickets,
		TotalScannedTickets:   scanned,
		TotalUnscannedTickets: totalTickets - scanned,
		TotalStudents:         totalStudents,
		TotalOrganizers:       totalOrganizers,
		ScanRate:              scanRate,
		TopEvents:             topEvents,
	}, nil
}
