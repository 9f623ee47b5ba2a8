package health

// Metrics is a snapshot of the user's recovery state. Values are
// synthesized per request until the analytics pipeline lands.
type Metrics struct {
	RecoveryScore      int `json:"recovery_score"`
	MobilityScore      int `json:"mobility_score"`
	PainLevel          int `json:"pain_level"`
	ExercisesCompleted int `json:"exercises_completed"`
	StreakDays         int `json:"streak_days"`
}

// RecoveryDataPoint is one day on the recovery chart.
type RecoveryDataPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}
