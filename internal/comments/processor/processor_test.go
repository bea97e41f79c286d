package processor

import (
	"context"
	"strings"
	"testing"

	"air-relatorios/internal/clients/aiwebhook"
	"air-relatorios/internal/clients/httpx"
	"air-relatorios/internal/comments"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const threeComments = "Username,Comment,Likes\nana,Amei!,3\nbia,Quanto custa?,1\ncaio,Não gostei,0\n"

func testCampaign() store.Campaign {
	return store.Campaign{
		ID:   uuid.New(),
		Name: "Verão",
		CommentCategories: store.NewJSON([]domain.CommentCategory{
			{Name: "Elogio", Description: "Comentário positivo"},
			{Name: "Dúvida", Description: "Pergunta sobre o produto"},
			{Name: "Crítica", Description: "Comentário negativo"},
		}),
	}
}

// persisted mimics the store assigning ids to new comments.
func persisted(params []store.CreateCommentParams) []store.Comment {
	out := make([]store.Comment, 0, len(params))
	for _, p := range params {
		out = append(out, store.Comment{
			ID:         uuid.New(),
			CampaignID: p.CampaignID,
			PostURL:    p.PostURL,
			Author:     p.Author,
			Text:       p.Text,
			Likes:      p.Likes,
			Category:   p.Category,
			Classified: p.Classified,
		})
	}
	return out
}

func TestCommentsProcessor_UploadClassifierDownThenReclassify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStore := NewMockCommentsStore(ctrl)
	mockAI := NewMockClassifier(ctrl)
	campaign := testCampaign()
	postURL := "https://www.instagram.com/p/ABC123/"

	var saved []store.Comment
	mockStore.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil).Times(2)
	mockStore.EXPECT().CreateComments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params []store.CreateCommentParams) ([]store.Comment, error) {
			for _, p := range params {
				assert.Equal(t, domain.Unclassified, p.Category)
				assert.False(t, p.Classified)
			}
			saved = persisted(params)
			return append([]store.Comment(nil), saved...), nil
		}).Times(1)
	mockAI.EXPECT().ClassifyComments(gomock.Any(), gomock.Any()).
		Return(nil, &httpx.UpstreamError{Status: 504})

	p := New(mockStore, mockAI, observability.NewLogger())
	res, err := p.Upload(context.Background(), UploadParams{CampaignID: campaign.ID, PostURL: postURL}, strings.NewReader(threeComments))
	require.ErrorIs(t, err, ErrClassificationFailed)
	assert.Equal(t, 504, httpx.UpstreamStatus(err))
	assert.Equal(t, 3, res.Saved)
	assert.Equal(t, 0, res.Classified)
	for _, c := range res.Comments {
		assert.Equal(t, domain.Unclassified, c.Category)
		assert.False(t, c.Classified)
	}

	mockStore.EXPECT().ListComments(gomock.Any(), campaign.ID, store.CommentFilter{PostURL: postURL}).Return(saved, nil)
	mockAI.EXPECT().ClassifyComments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req aiwebhook.ClassifyRequest) ([]aiwebhook.Classification, error) {
			assert.Equal(t, aiwebhook.ActionClassifyComments, req.Action)
			require.Len(t, req.Comments, 3)
			require.Len(t, req.Categories, 3)
			return []aiwebhook.Classification{
				{CommentID: req.Comments[0].ID, Verdicts: map[string]bool{"Elogio": true}},
				{CommentID: req.Comments[1].ID, Verdicts: map[string]bool{"Crítica": true, "Dúvida": true}},
				{CommentID: req.Comments[2].ID, Verdicts: map[string]bool{"Elogio": false}},
			}, nil
		})
	mockStore.EXPECT().UpdateCommentClassifications(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updates []store.CommentClassification) error {
			require.Len(t, updates, 3)
			assert.Equal(t, saved[0].ID, updates[0].ID)
			assert.Equal(t, "Elogio", updates[0].Category)
			assert.Equal(t, "Dúvida", updates[1].Category)
			assert.Equal(t, domain.Unclassified, updates[2].Category)
			for _, u := range updates {
				assert.True(t, u.Classified)
			}
			return nil
		})

	res, err = p.Reclassify(context.Background(), campaign.ID, postURL)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Saved)
	assert.Equal(t, 3, res.Classified)
}

func TestCommentsProcessor_UploadSuccess(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStore := NewMockCommentsStore(ctrl)
	mockAI := NewMockClassifier(ctrl)
	campaign := testCampaign()
	influencerID := uuid.New()

	mockStore.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mockStore.EXPECT().GetInfluencerByID(gomock.Any(), influencerID).Return(store.Influencer{ID: influencerID, Handle: "ana"}, nil)
	mockStore.EXPECT().CreateComments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params []store.CreateCommentParams) ([]store.Comment, error) {
			require.Len(t, params, 3)
			assert.Equal(t, &influencerID, params[0].InfluencerID)
			return persisted(params), nil
		})
	mockAI.EXPECT().ClassifyComments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req aiwebhook.ClassifyRequest) ([]aiwebhook.Classification, error) {
			assert.Equal(t, "ana", req.Influencer)
			// The classifier only answered for the first comment.
			return []aiwebhook.Classification{
				{CommentID: req.Comments[0].ID, Verdicts: map[string]bool{"Elogio": true}},
			}, nil
		})
	mockStore.EXPECT().UpdateCommentClassifications(gomock.Any(), gomock.Any()).Return(nil)

	p := New(mockStore, mockAI, observability.NewLogger())
	res, err := p.Upload(context.Background(), UploadParams{
		CampaignID:   campaign.ID,
		PostURL:      "https://www.instagram.com/p/ABC123/",
		InfluencerID: &influencerID,
	}, strings.NewReader(threeComments))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Saved)
	assert.Equal(t, 1, res.Classified)
	assert.Equal(t, "Elogio", res.Comments[0].Category)
	assert.True(t, res.Comments[0].Classified)
	assert.Equal(t, domain.Unclassified, res.Comments[1].Category)
	assert.False(t, res.Comments[1].Classified)
}

func TestCommentsProcessor_UploadWithoutCategoriesSkipsClassifier(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStore := NewMockCommentsStore(ctrl)
	campaign := store.Campaign{ID: uuid.New()}

	mockStore.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)
	mockStore.EXPECT().CreateComments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params []store.CreateCommentParams) ([]store.Comment, error) {
			return persisted(params), nil
		})

	p := New(mockStore, NewMockClassifier(ctrl), observability.NewLogger())
	res, err := p.Upload(context.Background(), UploadParams{CampaignID: campaign.ID, PostURL: "x"}, strings.NewReader(threeComments))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Saved)
}

func TestCommentsProcessor_UploadErrors(t *testing.T) {
	t.Parallel()

	campaignID := uuid.New()

	tests := []struct {
		name          string
		params        UploadParams
		csv           string
		setupMocks    func(*MockCommentsStore)
		expectedError error
	}{
		{
			name:          "missing post url",
			params:        UploadParams{CampaignID: campaignID},
			csv:           threeComments,
			setupMocks:    func(*MockCommentsStore) {},
			expectedError: ErrPostURLRequired,
		},
		{
			name:          "missing Comment column",
			params:        UploadParams{CampaignID: campaignID, PostURL: "x"},
			csv:           "Username,Text\nana,oi\n",
			setupMocks:    func(*MockCommentsStore) {},
			expectedError: comments.ErrBadCSV,
		},
		{
			name:   "campaign not found",
			params: UploadParams{CampaignID: campaignID, PostURL: "x"},
			csv:    threeComments,
			setupMocks: func(m *MockCommentsStore) {
				m.EXPECT().GetCampaignByID(gomock.Any(), campaignID).Return(store.Campaign{}, store.ErrNotFound)
			},
			expectedError: ErrCampaignNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockStore := NewMockCommentsStore(ctrl)
			tt.setupMocks(mockStore)

			p := New(mockStore, NewMockClassifier(ctrl), observability.NewLogger())
			_, err := p.Upload(context.Background(), tt.params, strings.NewReader(tt.csv))
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestCommentsProcessor_ReclassifyWithoutCategories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStore := NewMockCommentsStore(ctrl)
	campaign := store.Campaign{ID: uuid.New()}
	mockStore.EXPECT().GetCampaignByID(gomock.Any(), campaign.ID).Return(campaign, nil)

	p := New(mockStore, NewMockClassifier(ctrl), observability.NewLogger())
	_, err := p.Reclassify(context.Background(), campaign.ID, "x")
	assert.ErrorIs(t, err, ErrNoCategories)
}
