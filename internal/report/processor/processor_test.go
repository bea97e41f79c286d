package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type snapshotCtxKey struct{}

// expectSnapshot runs the snapshot callback with a marked context so reads
// can be checked to happen inside it.
func expectSnapshot(mockStore *MockReportStore) {
	mockStore.EXPECT().Snapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(context.WithValue(ctx, snapshotCtxKey{}, true))
		})
}

var inSnapshot = gomock.Cond(func(ctx context.Context) bool {
	return ctx.Value(snapshotCtxKey{}) == true
})

func expectLoad(mockStore *MockReportStore, campaign store.Campaign, edges []store.CampaignInfluencerDetail, posts []store.Post) {
	expectSnapshot(mockStore)
	mockStore.EXPECT().GetCampaignByID(inSnapshot, campaign.ID).Return(campaign, nil)
	mockStore.EXPECT().GetClientByID(inSnapshot, campaign.ClientID).Return(store.Client{}, store.ErrNotFound)
	mockStore.EXPECT().ListCampaignInfluencers(inSnapshot, campaign.ID).Return(edges, nil)
	mockStore.EXPECT().ListPostsByCampaign(inSnapshot, campaign.ID).Return(posts, nil)
	mockStore.EXPECT().ListInsights(inSnapshot, campaign.ID, "", false).Return(nil, nil)
	mockStore.EXPECT().CountCommentsByCategory(inSnapshot, campaign.ID).Return(nil, nil)
	mockStore.EXPECT().ListComments(inSnapshot, campaign.ID, store.CommentFilter{Limit: report.CommentSampleSize}).Return(nil, nil)
}

func testCampaign() (store.Campaign, []store.CampaignInfluencerDetail, []store.Post) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	campaign := store.Campaign{ID: uuid.New(), ClientID: uuid.New(), Name: "Verão", StartDate: &start}
	edge := store.CampaignInfluencerDetail{
		CampaignInfluencer: store.CampaignInfluencer{ID: uuid.New(), CampaignID: campaign.ID, InfluencerID: uuid.New(), Cost: 100},
		Handle:             "ana",
		DisplayName:        "Ana",
		Network:            "instagram",
		Followers:          20_000,
	}
	posts := []store.Post{
		{
			ID:                   uuid.New(),
			CampaignInfluencerID: edge.ID,
			CampaignID:           campaign.ID,
			InfluencerID:         edge.InfluencerID,
			Format:               "Reels",
			PublicationDate:      &start,
			Metrics:              store.NewJSON(domain.PostMetrics{Views: 1000, Reach: 800, Interactions: 50}),
		},
		{
			ID:           uuid.New(),
			CampaignID:   campaign.ID,
			InfluencerID: uuid.New(),
			Format:       "Feed",
			Metrics:      store.NewJSON(domain.PostMetrics{Views: 99_999}),
		},
	}
	return campaign, []store.CampaignInfluencerDetail{edge}, posts
}

func TestReportProcessor_GetPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := observability.NewLogger()

	t.Run("big numbers skip orphan posts", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mockStore := NewMockReportStore(ctrl)
		campaign, edges, posts := testCampaign()
		expectLoad(mockStore, campaign, edges, posts)

		p := New(mockStore, logger)
		payload, err := p.GetPage(ctx, campaign.ID, string(domain.PageBigNumbers), report.DefaultOptions())
		require.NoError(t, err)

		bn, ok := payload.Data.(report.BigNumbers)
		require.True(t, ok)
		assert.Equal(t, int64(1000), bn.Totals.Impressions)
		assert.Equal(t, 1, bn.Totals.Posts)
		assert.Equal(t, "Verão", payload.Header.Title)
	})

	t.Run("campaign not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mockStore := NewMockReportStore(ctrl)
		id := uuid.New()
		expectSnapshot(mockStore)
		mockStore.EXPECT().GetCampaignByID(inSnapshot, id).Return(store.Campaign{}, store.ErrNotFound)

		p := New(mockStore, logger)
		_, err := p.GetPage(ctx, id, string(domain.PageBigNumbers), report.DefaultOptions())
		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown page is rejected before loading", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mockStore := NewMockReportStore(ctrl)

		p := New(mockStore, logger)
		_, err := p.GetPage(ctx, uuid.New(), "nope", report.DefaultOptions())
		assert.ErrorIs(t, err, domain.ErrBadInput)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mockStore := NewMockReportStore(ctrl)
		campaign, _, _ := testCampaign()
		boom := errors.New("boom")
		expectSnapshot(mockStore)
		mockStore.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
		mockStore.EXPECT().GetClientByID(gomock.Any(), campaign.ClientID).Return(store.Client{Name: "X"}, nil)
		mockStore.EXPECT().ListCampaignInfluencers(gomock.Any(), campaign.ID).Return(nil, boom)

		p := New(mockStore, logger)
		_, err := p.GetPage(ctx, campaign.ID, string(domain.PageBigNumbers), report.DefaultOptions())
		assert.ErrorIs(t, err, boom)
	})
}

func TestReportProcessor_GetAllRespectsAllowedPages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStore := NewMockReportStore(ctrl)
	campaign, edges, posts := testCampaign()
	expectLoad(mockStore, campaign, edges, posts)

	p := New(mockStore, observability.NewLogger())
	pages, err := p.GetAll(context.Background(), campaign.ID, report.DefaultOptions(),
		[]string{string(domain.PageBigNumbers), string(domain.PageGlossary)})
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, domain.PageBigNumbers, pages[0].Page)
	assert.Equal(t, domain.PageGlossary, pages[1].Page)
}

func TestReportProcessor_Dataset(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStore := NewMockReportStore(ctrl)
	campaign, edges, posts := testCampaign()
	expectLoad(mockStore, campaign, edges, posts)

	p := New(mockStore, observability.NewLogger())
	ds, err := p.Dataset(context.Background(), campaign.ID, report.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, ds.Posts, 1)
	assert.Equal(t, "Ana", ds.Posts[0].Influencer)
	assert.Equal(t, "01/06/2025", ds.Posts[0].Date)
}
