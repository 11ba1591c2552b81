package database

import (
	"testing"
	"time"

	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Proposal{},
		&models.Meeting{},
		&models.Contact{},
		&models.SEOSettings{},
	))
	return db
}

func seedProposal(t *testing.T, repo *ProposalRepo, title string, createdAt time.Time) *models.Proposal {
	t.Helper()

	proposal := &models.Proposal{
		ID:          uuid.New(),
		Title:       title,
		Type:        "consulting",
		Timeline:    "1 month",
		Description: "description",
		Status:      models.ProposalStatusPending,
		UserName:    "Test User",
		UserEmail:   "user@example.com",
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Add(proposal))
	return proposal
}

func TestProposalUpdateReviewTouchesOnlyReviewFields(t *testing.T) {
	repo := NewProposalRepo(openTestDB(t))
	proposal := seedProposal(t, repo, "Bengali ANPR pipeline", time.Now().UTC())

	require.NoError(t, repo.UpdateReview(proposal.ID, "Looks good, approved.", models.ProposalStatusApproved))

	updated, err := repo.FindByID(proposal.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "Looks good, approved.", *updated.AdminResponse)
	assert.Equal(t, models.ProposalStatusApproved, updated.Status)

	// Everything outside the review pair survives untouched.
	assert.Equal(t, proposal.Title, updated.Title)
	assert.Equal(t, proposal.Type, updated.Type)
	assert.Equal(t, proposal.Description, updated.Description)
	assert.Equal(t, proposal.UserEmail, updated.UserEmail)
}

func TestProposalDeleteRemovesFromListing(t *testing.T) {
	repo := NewProposalRepo(openTestDB(t))
	keep := seedProposal(t, repo, "keep", time.Now().UTC())
	drop := seedProposal(t, repo, "drop", time.Now().UTC())

	require.NoError(t, repo.Delete(drop.ID))

	proposals, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, keep.ID, proposals[0].ID)

	_, err = repo.FindByID(drop.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProposalDeleteLastLeavesEmptyListing(t *testing.T) {
	repo := NewProposalRepo(openTestDB(t))
	only := seedProposal(t, repo, "only", time.Now().UTC())

	require.NoError(t, repo.Delete(only.ID))

	proposals, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, proposals)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProposalFindRecentLimitsAndOrders(t *testing.T) {
	repo := NewProposalRepo(openTestDB(t))
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		seedProposal(t, repo, "proposal", base.Add(time.Duration(i)*time.Minute))
	}

	recent, err := repo.FindRecent(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)

	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}
}

func TestProposalCountByStatus(t *testing.T) {
	repo := NewProposalRepo(openTestDB(t))
	seedProposal(t, repo, "a", time.Now().UTC())
	b := seedProposal(t, repo, "b", time.Now().UTC())

	require.NoError(t, repo.UpdateReview(b.ID, "", models.ProposalStatusCompleted))

	pending, err := repo.CountByStatus(models.ProposalStatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	completed, err := repo.CountByStatus(models.ProposalStatusCompleted)
	require.NoError(t, err)
	assert.EqualValues(t, 1, completed)
}

func TestProposalAddDefaultsStatusToPending(t *testing.T) {
	repo := NewProposalRepo(openTestDB(t))

	proposal := &models.Proposal{
		Title:       "untagged",
		Type:        "research",
		Timeline:    "2 weeks",
		Description: "description",
		UserName:    "Test User",
		UserEmail:   "user@example.com",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Add(proposal))

	assert.NotEqual(t, uuid.Nil, proposal.ID)
	assert.Equal(t, models.ProposalStatusPending, proposal.Status)
}
