package dto

// SubjectTimeResponse is one row of the time-by-subject view
type SubjectTimeResponse struct {
	Subject      string `json:"subject"`
	TotalMinutes int    `json:"totalMinutes"`
}

// PeriodTimeResponse is one row of the time-by-period view
type PeriodTimeResponse struct {
	Period       string `json:"period"`
	TotalMinutes int    `json:"totalMinutes"`
}

// SubjectDifficultyResponse is one row of the difficulty-by-subject view.
// AvgDifficulty is rounded to 2 decimal places.
type SubjectDifficultyResponse struct {
	Subject       string  `json:"subject"`
	AvgDifficulty float64 `json:"avgDifficulty"`
}

// StudentTimeResponse is one row of the time-by-student view
type StudentTimeResponse struct {
	Student      string `json:"student"`
	TotalMinutes int    `json:"totalMinutes"`
}
