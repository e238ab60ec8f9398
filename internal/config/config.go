package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/jsonc"
)

// profilesFileName is the single store file under the config directory.
const profilesFileName = "profiles.json"

// Profile names one gateway appliance and how to reach it. The connection
// itself is out of scope here; these fields are carried for the
// collaborators that do the talking.
type Profile struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username,omitempty"`
}

// fileState is the on-disk document: the profile map plus the currently
// selected name.
type fileState struct {
	Current  string             `json:"current_profile,omitempty"`
	Profiles map[string]Profile `json:"profiles"`
}

// Store reads and writes the profile file. The zero value is not usable;
// construct with NewStore or, in tests, NewStoreAt.
type Store struct {
	dir string
}

// NewStore opens the store under the user config directory
// (e.g. ~/.config/boxofports on Linux). The directory is created lazily on
// first write, so a fresh machine can list an empty store without side
// effects.
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot locate user config directory: %w", err)
	}
	return NewStoreAt(filepath.Join(base, "boxofports")), nil
}

// NewStoreAt opens a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// load reads the store file. A missing file is an empty store, not an
// error.
func (s *Store) load() (*fileState, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, profilesFileName))
	if errors.Is(err, os.ErrNotExist) {
		return &fileState{Profiles: map[string]Profile{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read profile store: %w", err)
	}

	var state fileState
	if err := json.Unmarshal(jsonc.ToJSON(data), &state); err != nil {
		return nil, fmt.Errorf("profile store is corrupt: %w", err)
	}
	if state.Profiles == nil {
		state.Profiles = map[string]Profile{}
	}
	return &state, nil
}

// save rewrites the store file, creating the directory on first use.
func (s *Store) save(state *fileState) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, profilesFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("cannot write profile store: %w", err)
	}
	return nil
}

// Add stores a profile, replacing any existing profile of the same name.
// The first profile added becomes current automatically.
func (s *Store) Add(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	state, err := s.load()
	if err != nil {
		return err
	}
	state.Profiles[p.Name] = p
	if state.Current == "" {
		state.Current = p.Name
	}
	return s.save(state)
}

// Remove deletes a profile by name. It reports whether the profile
// existed; removing the current profile clears the selection.
func (s *Store) Remove(name string) (bool, error) {
	state, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := state.Profiles[name]; !ok {
		return false, nil
	}
	delete(state.Profiles, name)
	if state.Current == name {
		state.Current = ""
	}
	return true, s.save(state)
}

// Use selects the current profile.
func (s *Store) Use(name string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := state.Profiles[name]; !ok {
		return fmt.Errorf("no such profile %q", name)
	}
	state.Current = name
	return s.save(state)
}

// List returns every profile sorted by name for stable listings.
func (s *Store) List() ([]Profile, error) {
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]Profile, 0, len(state.Profiles))
	for _, p := range state.Profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Current returns the selected profile name, empty when none is selected.
func (s *Store) Current() (string, error) {
	state, err := s.load()
	if err != nil {
		return "", err
	}
	return state.Current, nil
}
