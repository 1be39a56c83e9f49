// Package seed loads demo records from a YAML fixture file. Fixtures refer
// to parents by display name; the seeder resolves them to ids and writes
// through the services so every validation and reference rule applies.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures is the top-level document of a seed file.
type Fixtures struct {
	Colleges      []CollegeFixture      `yaml:"colleges"`
	Programs      []ProgramFixture      `yaml:"programs"`
	Students      []StudentFixture      `yaml:"students"`
	Organizations []OrganizationFixture `yaml:"organizations"`
	Members       []MemberFixture       `yaml:"members"`
}

type CollegeFixture struct {
	Name string `yaml:"name"`
}

type ProgramFixture struct {
	Name    string `yaml:"name"`
	College string `yaml:"college"`
}

type StudentFixture struct {
	StudentID  string `yaml:"student_id"`
	Firstname  string `yaml:"firstname"`
	Lastname   string `yaml:"lastname"`
	Middlename string `yaml:"middlename"`
	Program    string `yaml:"program"`
}

type OrganizationFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	College     string `yaml:"college"`
}

// MemberFixture names the student by student number.
type MemberFixture struct {
	Student      string `yaml:"student"`
	Organization string `yaml:"organization"`
	DateJoined   string `yaml:"date_joined"`
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fixtures, nil
}

// LoadFile reads and decodes a fixture file.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures file: %w", err)
	}
	return Parse(data)
}
