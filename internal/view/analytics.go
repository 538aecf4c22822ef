package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

// PatternView is one recurring topic in the analytics panel.
type PatternView struct {
	Topic      string `json:"topic"`
	Frequency  int    `json:"frequency"`
	Importance int    `json:"importance"`
}

// Line renders "Frequency: 4 | Importance: 80%".
func (p PatternView) Line(t i18n.Table) string {
	return fmt.Sprintf("%s: %d | %s: %d%%", t.T("frequency"), p.Frequency, t.T("importance"), p.Importance)
}

// AnalyticsView is the analytics panel. CallToAction replaces the pattern
// list when there are no patterns.
type AnalyticsView struct {
	Title           string        `json:"title"`
	TotalLabel      string        `json:"total_label"`
	TopicsLabel     string        `json:"topics_label"`
	YearsLabel      string        `json:"years_label"`
	TotalQuestions  int           `json:"total_questions"`
	TopicCount      int           `json:"topic_count"`
	YearRange       string        `json:"year_range"`
	PatternsHeading string        `json:"patterns_heading"`
	Patterns        []PatternView `json:"patterns"`
	CallToAction    string        `json:"call_to_action,omitempty"`
}

// BuildAnalytics derives the analytics panel from a backend snapshot.
func BuildAnalytics(resp *api.AnalyticsResponse, t i18n.Table) AnalyticsView {
	v := AnalyticsView{
		Title:           t.T("analyticsTitle"),
		TotalLabel:      t.T("totalQuestions"),
		TopicsLabel:     t.T("topicsCovered"),
		YearsLabel:      t.T("yearRange"),
		TotalQuestions:  resp.TotalQuestions,
		TopicCount:      len(resp.TopicDistribution),
		PatternsHeading: t.T("keyPatterns"),
	}

	years := make([]string, 0, len(resp.YearWiseTrends))
	for y := range resp.YearWiseTrends {
		years = append(years, y)
	}
	v.YearRange = YearRange(years)

	for _, p := range resp.Patterns {
		v.Patterns = append(v.Patterns, PatternView{
			Topic:      p.Topic,
			Frequency:  p.Frequency,
			Importance: ConfidencePercent(p.ImportanceScore),
		})
	}
	if len(v.Patterns) == 0 {
		v.CallToAction = t.T("uploadFirst")
	}
	return v
}

// YearRange returns the inclusive "min-max" span of the numeric year keys,
// or "" when none parse.
func YearRange(keys []string) string {
	found := false
	var lo, hi int
	for _, k := range keys {
		y, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			continue
		}
		if !found || y < lo {
			lo = y
		}
		if !found || y > hi {
			hi = y
		}
		found = true
	}
	if !found {
		return ""
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
