package report

import "fmt"

// maxRecommendations caps the merged recommendation list.
const maxRecommendations = 8

// habitAttentionScore is the habit score below which the habit's feedback
// string is promoted into the report recommendations.
const habitAttentionScore = 70.0

// buildRecommendations merges habit feedback, fluency recommendations, and
// baseline pace/filler/visual advice, in that priority order, truncated to
// eight entries. Duplicates across sources are kept — each source speaks for
// itself.
func buildRecommendations(rep *PerformanceReport) []string {
	var recs []string

	habitScores := []struct {
		score    float64
		feedback string
	}{
		{rep.Habits.Delivery.Pauses.Score, rep.Habits.Delivery.Pauses.Feedback},
		{rep.Habits.Delivery.Rate.Score, rep.Habits.Delivery.Rate.Feedback},
		{rep.Habits.Cognitive.Declarative.Score, rep.Habits.Cognitive.Declarative.Feedback},
		{rep.Habits.Vocal.Volume.Score, rep.Habits.Vocal.Volume.Feedback},
		{rep.Habits.Cognitive.ThoughtCompletion.Score, rep.Habits.Cognitive.ThoughtCompletion.Feedback},
		{rep.Habits.Cognitive.Framework.Score, rep.Habits.Cognitive.Framework.Feedback},
		{rep.Habits.Cognitive.Analogy.Score, rep.Habits.Cognitive.Analogy.Feedback},
	}
	for _, h := range habitScores {
		if h.score < habitAttentionScore && h.feedback != "" {
			recs = append(recs, h.feedback)
		}
	}

	if rep.Stuttering != nil {
		recs = append(recs, rep.Stuttering.Recommendations...)
	}

	wpm := rep.Speech.WordsPerMinute
	switch {
	case wpm > 0 && wpm < 100:
		recs = append(recs, fmt.Sprintf("You averaged %.0f words per minute — picking up the pace a little will hold attention better.", wpm))
	case wpm > 180:
		recs = append(recs, fmt.Sprintf("You averaged %.0f words per minute — slow down so listeners can keep up.", wpm))
	}
	if fillerRatio(rep) > 0.05 {
		recs = append(recs, "Filler words made up a noticeable share of your speech. Replace them with a brief pause.")
	}
	if rep.Visual.EyeContactPercentage < 50 {
		recs = append(recs, "Eye contact was below half the recording. Look into the camera when making your key points.")
	}
	if rep.Visual.PostureScore < 60 {
		recs = append(recs, "Posture slipped during the recording. Sit or stand tall — it carries into your voice.")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
