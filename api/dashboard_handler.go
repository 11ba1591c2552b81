package api

import (
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type dashboardHandler struct {
	responder    Responder
	logger       zerolog.Logger
	userRepo     *database.UserRepo
	proposalRepo *database.ProposalRepo
	meetingRepo  *database.MeetingRepo
}

func newDashboardHandler(userRepo *database.UserRepo, proposalRepo *database.ProposalRepo, meetingRepo *database.MeetingRepo) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		userRepo:     userRepo,
		proposalRepo: proposalRepo,
		meetingRepo:  meetingRepo,
	}
}

const dashboardListLimit = 5

// DashboardStats is the admin landing page payload: headline counters plus
// the two short activity lists.
type DashboardStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalProposals   int64 `json:"totalProposals"`
	PendingProposals int64 `json:"pendingProposals"`
	TotalMeetings    int64 `json:"totalMeetings"`

	RecentProposals  listResponse[ProposalView] `json:"recentProposals"`
	UpcomingMeetings listResponse[MeetingView]  `json:"upcomingMeetings"`
}

// stats aggregates the dashboard counters and lists. The queries are
// independent, so they run concurrently and the first failure wins.
func (h dashboardHandler) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats DashboardStats
		var recent []*models.Proposal
		var upcoming []*models.Meeting

		var g errgroup.Group

		g.Go(func() error {
			var err error
			stats.TotalUsers, err = h.userRepo.Count()
			return err
		})
		g.Go(func() error {
			var err error
			stats.TotalProposals, err = h.proposalRepo.Count()
			return err
		})
		g.Go(func() error {
			var err error
			stats.PendingProposals, err = h.proposalRepo.CountByStatus(models.ProposalStatusPending)
			return err
		})
		g.Go(func() error {
			var err error
			stats.TotalMeetings, err = h.meetingRepo.Count()
			return err
		})
		g.Go(func() error {
			var err error
			recent, err = h.proposalRepo.FindRecent(dashboardListLimit)
			return err
		})
		g.Go(func() error {
			var err error
			today := time.Now().Format("2006-01-02")
			upcoming, err = h.meetingRepo.FindUpcoming(today, dashboardListLimit)
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load dashboard", "dashboard", err))
			return
		}

		recentViews := make([]ProposalView, 0, len(recent))
		for _, proposal := range recent {
			recentViews = append(recentViews, newProposalView(proposal))
		}
		upcomingViews := make([]MeetingView, 0, len(upcoming))
		for _, meeting := range upcoming {
			upcomingViews = append(upcomingViews, newMeetingView(meeting))
		}

		stats.RecentProposals = newListResponse(recentViews, emptyRecentProposals)
		stats.UpcomingMeetings = newListResponse(upcomingViews, emptyUpcomingMeetings)

		h.responder.WriteJSON(w, stats)
	}
}
