package store

import (
	"context"
	"testing"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, tdb *TestDB, email string) User {
	t.Helper()
	u, err := tdb.Store.CreateUser(context.Background(), CreateUserParams{
		Email:        email,
		Name:         "Operator",
		PasswordHash: "hash",
		Role:         string(domain.RoleAdmin),
	})
	require.NoError(t, err)
	return u
}

func createTestClient(t *testing.T, tdb *TestDB) Client {
	t.Helper()
	c, err := tdb.Store.CreateClient(context.Background(), CreateClientParams{Name: "Client " + uuid.NewString()[:6]})
	require.NoError(t, err)
	return c
}

func createTestInfluencer(t *testing.T, tdb *TestDB, handle string, followers int64) Influencer {
	t.Helper()
	inf, err := tdb.Store.CreateInfluencer(context.Background(), CreateInfluencerParams{
		Handle:         handle,
		DisplayName:    handle,
		Network:        string(domain.NetworkInstagram),
		Followers:      followers,
		Classification: string(domain.Classify(followers)),
	})
	require.NoError(t, err)
	return inf
}

func createTestCampaign(t *testing.T, tdb *TestDB) Campaign {
	t.Helper()
	client := createTestClient(t, tdb)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	c, err := tdb.Store.CreateCampaign(context.Background(), CreateCampaignParams{
		Name:      "Campanha",
		ClientID:  client.ID,
		StartDate: &start,
		EndDate:   &end,
		DataMode:  string(domain.DataModeStatic),
		CommentCategories: []domain.CommentCategory{
			{Name: "Elogio", Description: "positive"},
		},
	})
	require.NoError(t, err)
	return c
}
