package report

// Habit weights for the composite habits score. They sum to 100.
const (
	pauseWeight       = 0.15
	rateWeight        = 0.10
	declarativeWeight = 0.15
	volumeWeight      = 0.15
	completionWeight  = 0.15
	frameworkWeight   = 0.15
	analogyWeight     = 0.15
)

// Overall-score weights. They sum to 100.
const (
	clarityWeight    = 0.15
	fluencyWeight    = 0.10
	habitsWeight     = 0.35
	paceWeight       = 0.10
	eyeContactWeight = 0.15
	postureWeight    = 0.15
)

// Clarity penalties: slow speech, rushed speech, and filler density.
const (
	slowPenaltyPerWPM   = 0.3 // per wpm below 100
	rushedPenaltyPerWPM = 0.5 // per wpm above 180
	fillerRatioPenalty  = 500 // multiplied by fillers per word
)

// summarize computes the composite scores from the assembled per-analyzer
// results.
func summarize(rep *PerformanceReport) Summary {
	s := Summary{
		ClarityScore: clarityScore(rep),
		HabitsScore:  habitsScore(rep),
		FluencyScore: 100,
	}
	if rep.Stuttering != nil {
		s.FluencyScore = rep.Stuttering.Score
	}

	paceScore := rep.Speech.WordsPerMinute / 1.5
	if paceScore > 100 {
		paceScore = 100
	}

	s.OverallScore = clamp(clarityWeight*s.ClarityScore +
		fluencyWeight*s.FluencyScore +
		habitsWeight*s.HabitsScore +
		paceWeight*paceScore +
		eyeContactWeight*rep.Visual.EyeContactPercentage +
		postureWeight*rep.Visual.PostureScore)

	return s
}

// clarityScore penalises slow speech, rushed speech, and filler density.
func clarityScore(rep *PerformanceReport) float64 {
	wpm := rep.Speech.WordsPerMinute

	score := 100.0
	if wpm < 100 {
		score -= slowPenaltyPerWPM * (100 - wpm)
	}
	if wpm > 180 {
		score -= rushedPenaltyPerWPM * (wpm - 180)
	}
	score -= fillerRatio(rep) * fillerRatioPenalty

	return clamp(score)
}

// habitsScore is the weighted sum of the seven habit scores.
func habitsScore(rep *PerformanceReport) float64 {
	h := rep.Habits
	return clamp(pauseWeight*h.Delivery.Pauses.Score +
		rateWeight*h.Delivery.Rate.Score +
		declarativeWeight*h.Cognitive.Declarative.Score +
		volumeWeight*h.Vocal.Volume.Score +
		completionWeight*h.Cognitive.ThoughtCompletion.Score +
		frameworkWeight*h.Cognitive.Framework.Score +
		analogyWeight*h.Cognitive.Analogy.Score)
}

// fillerRatio is filler hits per spoken word, 0 when no words were timed.
func fillerRatio(rep *PerformanceReport) float64 {
	if rep.Speech.WordCount == 0 {
		return 0
	}
	return float64(rep.Speech.Fillers.Count) / float64(rep.Speech.WordCount)
}

// clamp bounds a score to the 0–100 scale.
func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
