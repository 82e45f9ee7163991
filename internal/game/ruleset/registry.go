package ruleset

import "fmt"

// Registry indexes species and jobs by ID, preserving registration order for listings.
// It is read-only after loading and safe for concurrent readers.
type Registry struct {
	species      map[string]*Species
	jobs         map[string]*Job
	speciesOrder []*Species
	jobOrder     []*Job
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{
		species: make(map[string]*Species),
		jobs:    make(map[string]*Job),
	}
}

// RegisterSpecies adds s to the registry.
//
// Precondition: s must be non-nil with a non-empty ID not already registered.
func (r *Registry) RegisterSpecies(s *Species) {
	if s == nil {
		panic("Registry.RegisterSpecies: precondition violated: species must be non-nil")
	}
	if s.ID == "" {
		panic("Registry.RegisterSpecies: precondition violated: species ID must be non-empty")
	}
	if _, dup := r.species[s.ID]; dup {
		panic(fmt.Sprintf("Registry.RegisterSpecies: precondition violated: duplicate species %q", s.ID))
	}
	r.species[s.ID] = s
	r.speciesOrder = append(r.speciesOrder, s)
}

// RegisterJob adds j to the registry.
//
// Precondition: j must be non-nil with a non-empty ID not already registered.
func (r *Registry) RegisterJob(j *Job) {
	if j == nil {
		panic("Registry.RegisterJob: precondition violated: job must be non-nil")
	}
	if j.ID == "" {
		panic("Registry.RegisterJob: precondition violated: job ID must be non-empty")
	}
	if _, dup := r.jobs[j.ID]; dup {
		panic(fmt.Sprintf("Registry.RegisterJob: precondition violated: duplicate job %q", j.ID))
	}
	r.jobs[j.ID] = j
	r.jobOrder = append(r.jobOrder, j)
}

// Species returns the species with the given ID, if registered.
func (r *Registry) Species(id string) (*Species, bool) {
	s, ok := r.species[id]
	return s, ok
}

// Job returns the job with the given ID, if registered.
func (r *Registry) Job(id string) (*Job, bool) {
	j, ok := r.jobs[id]
	return j, ok
}

// AllSpecies returns every registered species in registration order.
func (r *Registry) AllSpecies() []*Species {
	out := make([]*Species, len(r.speciesOrder))
	copy(out, r.speciesOrder)
	return out
}

// AllJobs returns every registered job in registration order.
func (r *Registry) AllJobs() []*Job {
	out := make([]*Job, len(r.jobOrder))
	copy(out, r.jobOrder)
	return out
}

// PlayableSpecies returns the species offered at character creation.
func (r *Registry) PlayableSpecies() []*Species {
	var out []*Species
	for _, s := range r.speciesOrder {
		if s.Playable {
			out = append(out, s)
		}
	}
	return out
}

// PlayableJobs returns the jobs offered at character creation.
func (r *Registry) PlayableJobs() []*Job {
	var out []*Job
	for _, j := range r.jobOrder {
		if j.Playable {
			out = append(out, j)
		}
	}
	return out
}

// Load reads species and jobs from their directories into a new Registry.
//
// Precondition: both directories must be readable.
// Postcondition: Returns a populated Registry, or an error on any parse,
// validation or duplicate-ID failure.
func Load(speciesDir, jobsDir string) (*Registry, error) {
	species, err := LoadSpecies(speciesDir)
	if err != nil {
		return nil, fmt.Errorf("loading species: %w", err)
	}
	jobs, err := LoadJobs(jobsDir)
	if err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}
	reg := NewRegistry()
	for _, s := range species {
		if _, dup := reg.Species(s.ID); dup {
			return nil, fmt.Errorf("duplicate species id %q", s.ID)
		}
		reg.RegisterSpecies(s)
	}
	for _, j := range jobs {
		if _, dup := reg.Job(j.ID); dup {
			return nil, fmt.Errorf("duplicate job id %q", j.ID)
		}
		reg.RegisterJob(j)
	}
	return reg, nil
}
