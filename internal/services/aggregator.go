package services

import (
	"sort"
	"strings"

	"careerpath/api/internal/models"
)

// Status weights bias the aggregation toward offers the user actually
// applied to. Business heuristic: an application is a stronger signal of
// intent than a bookmark.
const (
	weightSend  = 3
	weightSaved = 2
	weightOther = 1
)

const (
	topPositionsLimit    = 5
	topSkillsLimit       = 15
	topTechnologiesLimit = 10
)

// OfferWithAnalysis pairs a tracked offer with its parsed requirements,
// when an analysis exists.
type OfferWithAnalysis struct {
	Offer    models.JobOffer
	Analysis *models.JobAnalysisResult
}

func statusWeight(status models.OfferStatus) int {
	switch status {
	case models.StatusSend:
		return weightSend
	case models.StatusSaved:
		return weightSaved
	default:
		return weightOther
	}
}

// isValidRequirement filters out placeholder values the analysis model
// emits for empty categories.
func isValidRequirement(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "brak", "brak informacji", "n/a", "":
		return false
	}
	return len(v) > 1
}

// weightedCounter accumulates weighted counts while remembering first-seen
// order, so ties rank by input order after the stable sort.
type weightedCounter struct {
	counts map[string]int
	order  []string
}

func newWeightedCounter() *weightedCounter {
	return &weightedCounter{counts: make(map[string]int)}
}

func (c *weightedCounter) add(key string, weight int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += weight
}

type weightedEntry struct {
	key   string
	count int
}

func (c *weightedCounter) top(n int) []weightedEntry {
	entries := make([]weightedEntry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, weightedEntry{key: key, count: c.counts[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// AggregateMarketData folds the user's tracked offers into a MarketSnapshot:
// top 5 position titles with weighted frequencies, top 15 skills, top 10
// technologies, and a flat experience-requirement list where each entry is
// repeated `weight` times to bias downstream generation.
func AggregateMarketData(offers []OfferWithAnalysis) models.MarketSnapshot {
	positions := newWeightedCounter()
	skills := newWeightedCounter()
	technologies := newWeightedCounter()
	var experienceReqs []string

	for _, item := range offers {
		weight := statusWeight(item.Offer.Status)

		positions.add(item.Offer.Title, weight)

		if item.Analysis == nil {
			continue
		}

		for _, skill := range item.Analysis.Skills {
			if isValidRequirement(skill) {
				skills.add(skill, weight)
			}
		}

		for _, tech := range item.Analysis.Technologies {
			if isValidRequirement(tech) {
				technologies.add(tech, weight)
			}
		}

		for _, exp := range item.Analysis.Experience {
			if isValidRequirement(exp) {
				for i := 0; i < weight; i++ {
					experienceReqs = append(experienceReqs, exp)
				}
			}
		}
	}

	topPositions := make([]models.PositionFrequency, 0, topPositionsLimit)
	for _, entry := range positions.top(topPositionsLimit) {
		topPositions = append(topPositions, models.PositionFrequency{
			Position:  entry.key,
			Frequency: entry.count,
		})
	}

	return models.MarketSnapshot{
		TargetPositions:          topPositions,
		MostRequiredSkills:       entryNames(skills.top(topSkillsLimit)),
		MostRequiredTechnologies: entryNames(technologies.top(topTechnologiesLimit)),
		ExperienceRequirements:   experienceReqs,
	}
}

func entryNames(entries []weightedEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.key)
	}
	return names
}
