package market

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillscope/internal/extraction"
	"github.com/jonathan/skillscope/internal/types"
)

const (
	// maxProfileSkills caps the ranked list; entries past the cap carry
	// negligible signal.
	maxProfileSkills = 50

	// defaultParallelism bounds concurrent per-posting extraction.
	defaultParallelism = 8
)

// Aggregator folds per-posting extraction results into a ranked market
// demand profile. Postings are processed concurrently; each extraction only
// reads the shared immutable ontology, so no coordination is needed beyond
// the frequency counter.
type Aggregator struct {
	extractor   *extraction.Extractor
	logger      *slog.Logger
	parallelism int
}

// NewAggregator creates an aggregator using the given extractor.
func NewAggregator(extractor *extraction.Extractor, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		extractor:   extractor,
		logger:      logger,
		parallelism: defaultParallelism,
	}
}

// BuildProfileFromSource fetches postings for the role and aggregates them.
// A source failure surfaces as *FetchError.
func (a *Aggregator) BuildProfileFromSource(ctx context.Context, role string, source DocumentSource) (*types.MarketProfile, error) {
	postings, err := source.FetchPostings(ctx, role)
	if err != nil {
		return nil, &FetchError{Role: role, Cause: err}
	}
	return a.BuildProfile(ctx, role, postings)
}

// BuildProfile extracts skills from every posting and ranks them by
// frequency. A skill qualifies only when its frequency reaches
// max(1, jobs/20), a 5% prevalence floor that keeps single-posting noise out
// of small samples. Zero qualifying skills is a valid outcome: the returned
// profile has JobsAnalyzed set, an empty skill list, and Status
// insufficient. An empty batch returns ErrNoPostings.
func (a *Aggregator) BuildProfile(ctx context.Context, role string, postings []Posting) (*types.MarketProfile, error) {
	if len(postings) == 0 {
		return nil, ErrNoPostings
	}

	var (
		mu         sync.Mutex
		counts     = make(map[string]int)
		categories = make(map[string]types.SkillCategory)
		degraded   bool
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)

	for _, posting := range postings {
		g.Go(func() error {
			result := a.extractor.Extract(gCtx, posting.Text())

			mu.Lock()
			defer mu.Unlock()
			if result.Status == types.ExtractionDegraded {
				degraded = true
			}
			for _, skill := range result.Skills {
				counts[skill.Name]++
				if _, ok := categories[skill.Name]; !ok {
					categories[skill.Name] = skill.Category
				}
			}
			return nil
		})
	}
	// Extraction never fails, so the only group error is ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	jobsAnalyzed := len(postings)
	floor := jobsAnalyzed / 20
	if floor < 1 {
		floor = 1
	}

	skills := make([]types.MarketSkill, 0, len(counts))
	for name, freq := range counts {
		if freq < floor {
			continue
		}
		pct := float64(freq) / float64(jobsAnalyzed) * 100
		skills = append(skills, types.MarketSkill{
			Name:       name,
			Frequency:  freq,
			Percentage: pct,
			Priority:   PriorityFor(pct),
			Category:   categories[name],
		})
	}

	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Frequency != skills[j].Frequency {
			return skills[i].Frequency > skills[j].Frequency
		}
		return skills[i].Name < skills[j].Name
	})
	if len(skills) > maxProfileSkills {
		skills = skills[:maxProfileSkills]
	}

	profile := &types.MarketProfile{
		Role:         role,
		JobsAnalyzed: jobsAnalyzed,
		Skills:       skills,
		Categories:   categorize(skills),
		Status:       types.ProfileOk,
	}
	switch {
	case len(skills) == 0:
		profile.Status = types.ProfileInsufficient
		a.logger.Warn("no skills passed the prevalence floor",
			"role", role, "jobs_analyzed", jobsAnalyzed, "floor", floor)
	case degraded:
		profile.Status = types.ProfileDegraded
	}

	return profile, nil
}

// PriorityFor maps a prevalence percentage to its demand tier.
func PriorityFor(pct float64) types.PriorityTier {
	switch {
	case pct >= 50:
		return types.PriorityCritical
	case pct >= 30:
		return types.PriorityHigh
	case pct >= 15:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// categorize groups profile skills into their taxonomy buckets. Skills the
// taxonomy does not know default to technical.
func categorize(skills []types.MarketSkill) map[types.SkillCategory][]types.MarketSkill {
	buckets := make(map[types.SkillCategory][]types.MarketSkill)
	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = types.CategoryTechnical
		}
		buckets[category] = append(buckets[category], skill)
	}
	return buckets
}
