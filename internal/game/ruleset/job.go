package ruleset

import (
	"errors"
	"fmt"
	"slices"
)

// Job defines a starting background for character creation.
//
// Precondition: ID and Name must be non-empty after loading.
type Job struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Description        string   `yaml:"description"`
	Playable           bool     `yaml:"playable"`
	RecommendedSpecies []string `yaml:"recommended_species"`
}

// RecommendsSpecies reports whether speciesID is on the job's recommended list.
func (j *Job) RecommendsSpecies(speciesID string) bool {
	return slices.Contains(j.RecommendedSpecies, speciesID)
}

// Validate checks the loaded definition.
func (j *Job) Validate() error {
	var errs []error
	if j.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if j.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("job %q: %w", j.ID, errors.Join(errs...))
	}
	return nil
}

// LoadJobs reads all .yaml files in dir and parses each as a Job.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed jobs in file-name order or a non-nil error.
func LoadJobs(dir string) ([]*Job, error) {
	return loadDefinitions(dir, "job", (*Job).Validate)
}
