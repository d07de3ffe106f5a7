package match

import (
	"sort"

	"service-freight-match/internal/domain"
)

// maxInsightTags bounds the top-tag union in insights.
const maxInsightTags = 5

// Rank sorts scored candidates descending by composite score with
// deterministic tie-breaks: higher trust score first, then lower estimated
// cost, then vehicle identifier ascending. It applies the MinScore floor and
// the TopN bound (0 means unlimited). An empty pool yields an empty result.
func Rank(results []domain.MatchResult, topN, minScore int) []domain.MatchResult {
	kept := make([]domain.MatchResult, 0, len(results))
	for _, r := range results {
		if r.Score >= minScore {
			kept = append(kept, r)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.TrustScore != b.TrustScore {
			return a.TrustScore > b.TrustScore
		}
		if a.EstimatedCostCents != b.EstimatedCostCents {
			return a.EstimatedCostCents < b.EstimatedCostCents
		}
		return a.VehicleID < b.VehicleID
	})

	if topN > 0 && len(kept) > topN {
		kept = kept[:topN]
	}
	return kept
}

// Insights aggregates a ranked result list: total matches, average score,
// and the union of the most frequent feature tags across the returned
// candidates' offers.
func Insights(ranked []domain.MatchResult, offers map[string]*domain.VehicleOffer) domain.MatchInsights {
	ins := domain.MatchInsights{TotalMatches: len(ranked)}
	if len(ranked) == 0 {
		return ins
	}

	sum := 0
	tagCount := map[string]int{}
	for _, r := range ranked {
		sum += r.Score
		if offer := offers[r.VehicleID]; offer != nil {
			for _, tag := range offer.FeatureTags {
				tagCount[tag]++
			}
		}
	}
	ins.AverageScore = float64(sum) / float64(len(ranked))

	tags := make([]string, 0, len(tagCount))
	for tag := range tagCount {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tagCount[tags[i]] != tagCount[tags[j]] {
			return tagCount[tags[i]] > tagCount[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > maxInsightTags {
		tags = tags[:maxInsightTags]
	}
	ins.TopTags = tags
	return ins
}
