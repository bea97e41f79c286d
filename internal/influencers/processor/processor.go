package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"air-relatorios/internal/clients/profiles"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// InfluencersStore defines the database operations required by InfluencersProcessor
type InfluencersStore interface {
	CreateInfluencer(ctx context.Context, params store.CreateInfluencerParams) (store.Influencer, error)
	GetInfluencerByID(ctx context.Context, id uuid.UUID) (store.Influencer, error)
	GetInfluencerByHandle(ctx context.Context, network, handle string) (store.Influencer, error)
	ListInfluencers(ctx context.Context, filter store.InfluencerFilter) ([]store.Influencer, error)
	UpdateInfluencer(ctx context.Context, id uuid.UUID, params store.UpdateInfluencerParams) (store.Influencer, error)
	SetInfluencerClassification(ctx context.Context, id uuid.UUID, classification string) error
	LinkInfluencers(ctx context.Context, a, b uuid.UUID) error
	UnlinkInfluencer(ctx context.Context, id uuid.UUID) error
	DeleteInfluencer(ctx context.Context, id uuid.UUID) error
	CountCampaignsByInfluencer(ctx context.Context, influencerID uuid.UUID) (int, error)
	ListCampaignsByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]store.Campaign, error)
	ListCampaignInfluencers(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignInfluencerDetail, error)
	ListPostsByCampaignInfluencer(ctx context.Context, edgeID uuid.UUID) ([]store.Post, error)
}

// ProfileLookup fetches a social profile from the profile API.
type ProfileLookup interface {
	GetProfile(ctx context.Context, username, network string) (profiles.Profile, error)
}

var (
	ErrInfluencerNotFound = fmt.Errorf("influencer not found: %w", domain.ErrNotFound)
	ErrInfluencerExists   = store.ErrInfluencerExists
	ErrInfluencerInUse    = fmt.Errorf("influencer is attached to campaigns: %w", domain.ErrConflict)
	ErrHandleRequired     = fmt.Errorf("handle is required: %w", domain.ErrBadInput)
	ErrNegativeFollowers  = fmt.Errorf("followers cannot be negative: %w", domain.ErrBadInput)
	ErrInvalidAirScore    = fmt.Errorf("air score must be between 0 and 1: %w", domain.ErrBadInput)
)

type InfluencersProcessor struct {
	store    InfluencersStore
	profiles ProfileLookup
	logger   *observability.Logger
}

func New(store InfluencersStore, profiles ProfileLookup, logger *observability.Logger) InfluencersProcessor {
	return InfluencersProcessor{
		store:    store,
		profiles: profiles,
		logger:   logger,
	}
}

type CreateParams struct {
	Handle         string
	DisplayName    string
	Network        string
	Followers      int64
	EngagementRate float64
	AirScore       float64
	Classification string
	PhotoURL       *string
	ProfileID      *string
}

// Create stores a hand-entered influencer. The tier is derived from the
// follower count unless Classification names one explicitly.
func (p *InfluencersProcessor) Create(ctx context.Context, params CreateParams) (store.Influencer, error) {
	network, err := domain.ParseNetwork(params.Network)
	if err != nil {
		return store.Influencer{}, err
	}
	handle := strings.TrimPrefix(strings.TrimSpace(params.Handle), "@")
	if handle == "" {
		return store.Influencer{}, ErrHandleRequired
	}
	if params.Followers < 0 {
		return store.Influencer{}, ErrNegativeFollowers
	}
	if params.AirScore < 0 || params.AirScore > 1 {
		return store.Influencer{}, ErrInvalidAirScore
	}
	tier := domain.Classify(params.Followers)
	if params.Classification != "" {
		if tier, err = domain.ParseTier(params.Classification); err != nil {
			return store.Influencer{}, err
		}
	}
	name := strings.TrimSpace(params.DisplayName)
	if name == "" {
		name = handle
	}

	inf, err := p.store.CreateInfluencer(ctx, store.CreateInfluencerParams{
		Handle:         handle,
		DisplayName:    name,
		Network:        string(network),
		Followers:      params.Followers,
		EngagementRate: domain.NormalizeEngagement(params.EngagementRate),
		AirScore:       params.AirScore,
		Classification: string(tier),
		PhotoURL:       params.PhotoURL,
		ProfileID:      params.ProfileID,
	})
	if err != nil {
		if !errors.Is(err, store.ErrInfluencerExists) {
			p.logger.Error(ctx, "failed to create influencer", err)
		}
		return store.Influencer{}, err
	}
	return inf, nil
}

// Lookup fetches username on network from the profile API. A new influencer
// is created with the tier of its current followers; a known one gets its
// counters refreshed while its tier stays frozen.
func (p *InfluencersProcessor) Lookup(ctx context.Context, username, network string) (store.Influencer, bool, error) {
	net, err := domain.ParseNetwork(network)
	if err != nil {
		return store.Influencer{}, false, err
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return store.Influencer{}, false, ErrHandleRequired
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "username", Value: username},
		observability.Field{Key: "network", Value: string(net)},
	)

	profile, err := p.profiles.GetProfile(ctx, username, string(net))
	if err != nil {
		p.logger.Error(ctx, "profile lookup failed", err)
		return store.Influencer{}, false, err
	}

	var photo, profileID *string
	if profile.Picture != "" {
		photo = &profile.Picture
	}
	if profile.ProfileID != "" {
		profileID = &profile.ProfileID
	}

	existing, err := p.store.GetInfluencerByHandle(ctx, string(net), username)
	switch {
	case err == nil:
		followers := profile.Followers
		engagement := profile.EngagementRate
		updated, err := p.store.UpdateInfluencer(ctx, existing.ID, store.UpdateInfluencerParams{
			Followers:      &followers,
			EngagementRate: &engagement,
			PhotoURL:       photo,
			ProfileID:      profileID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to refresh influencer", err)
			return store.Influencer{}, false, err
		}
		return updated, false, nil
	case !errors.Is(err, store.ErrNotFound):
		p.logger.Error(ctx, "failed to look up influencer", err)
		return store.Influencer{}, false, err
	}

	name := profile.Name
	if name == "" {
		name = username
	}
	inf, err := p.store.CreateInfluencer(ctx, store.CreateInfluencerParams{
		Handle:         username,
		DisplayName:    name,
		Network:        string(net),
		Followers:      profile.Followers,
		EngagementRate: profile.EngagementRate,
		Classification: string(domain.Classify(profile.Followers)),
		PhotoURL:       photo,
		ProfileID:      profileID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create influencer from profile", err)
		return store.Influencer{}, false, err
	}
	p.logger.Info(ctx, "influencer created from profile lookup", observability.Field{Key: "influencer_id", Value: inf.ID.String()})
	return inf, true, nil
}

func (p *InfluencersProcessor) Get(ctx context.Context, id uuid.UUID) (store.Influencer, error) {
	inf, err := p.store.GetInfluencerByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Influencer{}, ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to get influencer", err)
		return store.Influencer{}, err
	}
	return inf, nil
}

func (p *InfluencersProcessor) List(ctx context.Context, filter store.InfluencerFilter) ([]store.Influencer, error) {
	if filter.Network != "" {
		net, err := domain.ParseNetwork(filter.Network)
		if err != nil {
			return nil, err
		}
		filter.Network = string(net)
	}
	if filter.Classification != "" {
		tier, err := domain.ParseTier(filter.Classification)
		if err != nil {
			return nil, err
		}
		filter.Classification = string(tier)
	}
	list, err := p.store.ListInfluencers(ctx, filter)
	if err != nil {
		p.logger.Error(ctx, "failed to list influencers", err)
		return nil, err
	}
	return list, nil
}

type UpdateParams struct {
	Handle         *string
	DisplayName    *string
	Followers      *int64
	EngagementRate *float64
	AirScore       *float64
	PhotoURL       *string
}

// Update never touches the tier; RecomputeTier does.
func (p *InfluencersProcessor) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (store.Influencer, error) {
	if params.Followers != nil && *params.Followers < 0 {
		return store.Influencer{}, ErrNegativeFollowers
	}
	if params.AirScore != nil && (*params.AirScore < 0 || *params.AirScore > 1) {
		return store.Influencer{}, ErrInvalidAirScore
	}
	if params.Handle != nil && strings.TrimSpace(*params.Handle) == "" {
		return store.Influencer{}, ErrHandleRequired
	}
	upd := store.UpdateInfluencerParams{
		Handle:      params.Handle,
		DisplayName: params.DisplayName,
		Followers:   params.Followers,
		AirScore:    params.AirScore,
		PhotoURL:    params.PhotoURL,
	}
	if params.EngagementRate != nil {
		er := domain.NormalizeEngagement(*params.EngagementRate)
		upd.EngagementRate = &er
	}
	inf, err := p.store.UpdateInfluencer(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Influencer{}, ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to update influencer", err)
		return store.Influencer{}, err
	}
	return inf, nil
}

// Delete refuses while the influencer is attached to a campaign.
func (p *InfluencersProcessor) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := p.store.CountCampaignsByInfluencer(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to count influencer campaigns", err)
		return err
	}
	if n > 0 {
		return ErrInfluencerInUse
	}
	if err := p.store.DeleteInfluencer(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to delete influencer", err)
		return err
	}
	return nil
}

// RecomputeTier reclassifies the influencer from its current followers.
func (p *InfluencersProcessor) RecomputeTier(ctx context.Context, id uuid.UUID) (store.Influencer, error) {
	inf, err := p.Get(ctx, id)
	if err != nil {
		return store.Influencer{}, err
	}
	tier := domain.Classify(inf.Followers)
	if string(tier) == inf.Classification {
		return inf, nil
	}
	if err := p.store.SetInfluencerClassification(ctx, id, string(tier)); err != nil {
		p.logger.Error(ctx, "failed to set classification", err)
		return store.Influencer{}, err
	}
	p.logger.Info(ctx, "influencer tier recomputed",
		observability.Field{Key: "influencer_id", Value: id.String()},
		observability.Field{Key: "from", Value: inf.Classification},
		observability.Field{Key: "to", Value: string(tier)},
	)
	inf.Classification = string(tier)
	return inf, nil
}

// RecomputeAllTiers reclassifies every influencer and reports how many
// changed tier.
func (p *InfluencersProcessor) RecomputeAllTiers(ctx context.Context) (int, error) {
	list, err := p.store.ListInfluencers(ctx, store.InfluencerFilter{})
	if err != nil {
		p.logger.Error(ctx, "failed to list influencers", err)
		return 0, err
	}
	changed := 0
	for _, inf := range list {
		tier := string(domain.Classify(inf.Followers))
		if tier == inf.Classification {
			continue
		}
		if err := p.store.SetInfluencerClassification(ctx, inf.ID, tier); err != nil {
			p.logger.Error(ctx, "failed to set classification", err)
			return changed, err
		}
		changed++
	}
	p.logger.Info(ctx, "tiers recomputed",
		observability.Field{Key: "influencers", Value: len(list)},
		observability.Field{Key: "changed", Value: changed},
	)
	return changed, nil
}

// Link pairs two accounts of the same person across networks.
func (p *InfluencersProcessor) Link(ctx context.Context, a, b uuid.UUID) error {
	if err := p.store.LinkInfluencers(ctx, a, b); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInfluencerNotFound
		}
		if !errors.Is(err, domain.ErrBadInput) {
			p.logger.Error(ctx, "failed to link influencers", err)
		}
		return err
	}
	return nil
}

func (p *InfluencersProcessor) Unlink(ctx context.Context, id uuid.UUID) error {
	if err := p.store.UnlinkInfluencer(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInfluencerNotFound
		}
		p.logger.Error(ctx, "failed to unlink influencer", err)
		return err
	}
	return nil
}

// CampaignPerformance is the influencer's rollup inside one campaign.
type CampaignPerformance struct {
	CampaignID uuid.UUID      `json:"campaign_id"`
	Campaign   string         `json:"campaign"`
	StartDate  string         `json:"start_date,omitempty"`
	Rollup     metrics.Rollup `json:"rollup"`
}

type Performance struct {
	Influencer store.Influencer         `json:"influencer"`
	Campaigns  []CampaignPerformance    `json:"campaigns"`
	Total      metrics.InfluencerRollup `json:"total"`
}

// Performance aggregates the influencer across every campaign it joined.
func (p *InfluencersProcessor) Performance(ctx context.Context, id uuid.UUID) (Performance, error) {
	inf, err := p.Get(ctx, id)
	if err != nil {
		return Performance{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "influencer_id", Value: id.String()})

	campaigns, err := p.store.ListCampaignsByInfluencer(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to list influencer campaigns", err)
		return Performance{}, err
	}

	out := Performance{Influencer: inf, Campaigns: []CampaignPerformance{}}
	var rows [][]metrics.InfluencerRollup
	for _, c := range campaigns {
		edges, err := p.store.ListCampaignInfluencers(ctx, c.ID)
		if err != nil {
			p.logger.Error(ctx, "failed to list campaign influencers", err)
			return Performance{}, err
		}
		var edge *store.CampaignInfluencerDetail
		for i := range edges {
			if edges[i].InfluencerID == id {
				edge = &edges[i]
				break
			}
		}
		if edge == nil {
			continue
		}
		posts, err := p.store.ListPostsByCampaignInfluencer(ctx, edge.ID)
		if err != nil {
			p.logger.Error(ctx, "failed to list influencer posts", err)
			return Performance{}, err
		}
		rollups := metrics.Influencers(report.Project(c, []store.CampaignInfluencerDetail{*edge}, posts))
		if len(rollups) == 0 {
			continue
		}
		rows = append(rows, rollups)
		cp := CampaignPerformance{CampaignID: c.ID, Campaign: c.Name, Rollup: rollups[0].Rollup}
		if c.StartDate != nil {
			cp.StartDate = domain.FormatBR(*c.StartDate)
		}
		out.Campaigns = append(out.Campaigns, cp)
	}

	if merged := metrics.Merge(rows...); len(merged) > 0 {
		out.Total = merged[0]
	}
	return out, nil
}
