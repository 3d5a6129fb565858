package util

import (
	"fmt"
	"math/rand"
)

var random = rand.New(rand.NewSource(rand.Int63())) // nolint:gosec

var levels = []string{
	"Junior", "Senior", "10x", "Staff", "Rockstar", "Mid", "Ninja", "Guru",
	"Maverick", "Wizard", "Principal", "Fractional", "Shadow", "Interim",
}

var roles = []string{
	"PM", "Developer", "Designer", "PO", "Scrum Master", "Engineer",
	"UX Researcher", "Dev Rel", "Engineering Manager", "Agile Coach",
	"Tech Lead", "Intern",
}

// GetRandomName returns a random display name by combining a seniority level
// with a delivery-team role, e.g. "Rockstar Scrum Master"
func GetRandomName() string {
	levelsIndex := random.Intn(len(levels))
	rolesIndex := random.Intn(len(roles))

	return fmt.Sprintf("%s %s", levels[levelsIndex], roles[rolesIndex])
}
