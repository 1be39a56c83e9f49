package models

// HomeOverview backs the landing page: every organization plus record counts.
type HomeOverview struct {
	Organizations []OrganizationDetail `json:"organizations"`
	Counts        map[Entity]int       `json:"counts"`
}
