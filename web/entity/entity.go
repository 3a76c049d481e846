// Package entity defines data structures used by the web layer of runlog.
package entity

// Msg represents a standard API response message with success status, message text, and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// RunRecord is the JSON export shape of a single run.
type RunRecord struct {
	Id       int     `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// LeaderboardRow is one best-time entry, grouped by user and distance.
type LeaderboardRow struct {
	Username string  `json:"username"`
	Distance float64 `json:"distance"`
	BestTime float64 `json:"bestTime"`
}
