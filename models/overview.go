package models

// Overview is a snapshot of the port: every dock and ship plus the berthings
// in progress.
type Overview struct {
	Docks            []Dock     `json:"docks"`
	Ships            []Ship     `json:"ships"`
	CurrentBerthings []Berthing `json:"currentBerthings"`
}
