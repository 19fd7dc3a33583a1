package feed

import (
	"fmt"
	"math"
	"sort"
	"time"

	"pulsewave/app/models"
)

// RecencyWindow bounds how far back a tag occurrence still counts as
// "recent" for momentum scoring.
const RecencyWindow = 6 * time.Hour

// TrendingTopicsAt ranks the tags of the visible post set by total
// occurrence count, top 5, with a momentum score blending recent-vs-total
// occurrence ratio: min(120, round(recent/count*100)+20). Ties keep
// first-seen order. The work is O(posts × tags-per-post) over the loaded
// page, not a history scan.
func TrendingTopicsAt(posts []models.Post, now time.Time) []models.TrendingTopic {
	type tally struct {
		count  int
		recent int
	}
	counts := make(map[string]*tally)
	var order []string

	for _, post := range posts {
		for _, tag := range post.Tags {
			t, ok := counts[tag]
			if !ok {
				t = &tally{}
				counts[tag] = t
				order = append(order, tag)
			}
			t.count++
			if now.Sub(post.CreatedAt) <= RecencyWindow {
				t.recent++
			}
		}
	}

	topics := make([]models.TrendingTopic, 0, len(order))
	for _, tag := range order {
		t := counts[tag]
		momentum := 20
		if t.count > 0 {
			momentum = int(math.Round(float64(t.recent)/float64(t.count)*100)) + 20
			if momentum > 120 {
				momentum = 120
			}
		}
		topics = append(topics, models.TrendingTopic{
			Tag:      tag,
			Count:    t.count,
			Momentum: momentum,
		})
	}

	// stable sort keeps first-seen order for equal counts
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})
	if len(topics) > 5 {
		topics = topics[:5]
	}
	return topics
}

// TrendingTopics is TrendingTopicsAt against the wall clock.
func TrendingTopics(posts []models.Post) []models.TrendingTopic {
	return TrendingTopicsAt(posts, time.Now())
}

// InsightsAt aggregates the visible post set into the four community-vitals
// slots. The heuristics are intentionally coarse; the min/round clamps are
// part of the output contract.
func InsightsAt(posts []models.Post, now time.Time) []models.Insight {
	if len(posts) == 0 {
		return []models.Insight{
			{Label: "Pulses today", Value: "0", Meta: "まずは最初の投稿から"},
			{Label: "Avg. engagement", Value: "0", Meta: "リアクションがつくとここに表示されます"},
			{Label: "Momentum", Value: "0%", Meta: "投稿を重ねると増加"},
			{Label: "Active tags", Value: "0", Meta: "タグ付き投稿があると追跡"},
		}
	}

	todayCount := 0
	totalInteractions := 0
	uniqueTags := make(map[string]struct{})
	for _, post := range posts {
		if now.Sub(post.CreatedAt) < 24*time.Hour {
			todayCount++
		}
		totalInteractions += post.Likes + post.Boosts + post.Replies
		for _, tag := range post.Tags {
			uniqueTags[tag] = struct{}{}
		}
	}

	avg := int(math.Round(float64(totalInteractions) / float64(len(posts))))
	momentum := todayCount * 12
	if momentum > 100 {
		momentum = 100
	}

	return []models.Insight{
		{Label: "Pulses today", Value: fmt.Sprintf("%d", todayCount), Meta: "24時間以内の投稿数"},
		{Label: "Avg. engagement", Value: fmt.Sprintf("%d /post", avg), Meta: "Like + Boost + Reply"},
		{Label: "Momentum", Value: fmt.Sprintf("%d%%", momentum), Meta: "投稿頻度のざっくり指数"},
		{Label: "Active tags", Value: fmt.Sprintf("%d", len(uniqueTags)), Meta: "ハッシュタグの広がり"},
	}
}

// Insights is InsightsAt against the wall clock.
func Insights(posts []models.Post) []models.Insight {
	return InsightsAt(posts, time.Now())
}
