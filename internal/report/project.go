package report

import (
	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/store"
)

// Project maps stored entities onto the engine's input. The stored
// classification wins over the follower count so that a frozen tier stays
// frozen; an unreadable classification falls back to the derived tier.
func Project(c store.Campaign, edges []store.CampaignInfluencerDetail, posts []store.Post) metrics.Campaign {
	out := metrics.Campaign{
		ID:                  c.ID,
		Name:                c.Name,
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		IsAON:               c.IsAON,
		ReachEstimate:       c.ReachEstimate,
		ImpressionsEstimate: c.ImpressionsEstimate,
		TotalInvestment:     c.TotalInvestment,
		Influencers:         make([]metrics.Influencer, 0, len(edges)),
		Posts:               make([]metrics.Post, 0, len(posts)),
	}
	for _, e := range edges {
		tier, err := domain.ParseTier(e.Classification)
		if err != nil {
			tier = domain.Classify(e.Followers)
		}
		inf := metrics.Influencer{
			ID:             e.InfluencerID,
			EdgeID:         e.ID,
			DisplayName:    e.DisplayName,
			Handle:         e.Handle,
			Network:        e.Network,
			Followers:      e.Followers,
			AirScore:       e.AirScore,
			Tier:           tier,
			Cost:           e.Cost,
			Category:       e.Category,
			CustomCol1:     e.CustomCol1,
			CustomCol2:     e.CustomCol2,
			SpecificValues: e.SpecificValues.V,
		}
		if e.PhotoURL != nil {
			inf.PhotoURL = *e.PhotoURL
		}
		out.Influencers = append(out.Influencers, inf)
	}
	for _, p := range posts {
		out.Posts = append(out.Posts, projectPost(p))
	}
	return out
}

func projectPost(p store.Post) metrics.Post {
	format, err := domain.ParseFormat(p.Format)
	if err != nil {
		format = domain.Format(p.Format)
	}
	mp := metrics.Post{
		ID:           p.ID,
		InfluencerID: p.InfluencerID,
		Format:       format,
		Platform:     p.Platform,
		Date:         p.PublicationDate,
		Metrics:      p.Metrics.V,
	}
	if p.Permalink != nil {
		mp.Permalink = *p.Permalink
	}
	if p.Caption != nil {
		mp.Caption = *p.Caption
	}
	if len(p.Thumbnails.V) > 0 {
		mp.Thumbnail = p.Thumbnails.V[0]
	}
	return mp
}
