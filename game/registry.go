package game

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed teams/*.js
var embeddedTeams embed.FS

var (
	ErrUnknownTeam   = errors.New("unknown team")
	ErrSameTeam      = errors.New("a team cannot play itself")
	ErrDuplicateTeam = errors.New("team already registered")
)

// Registry maps team names to strategies
type Registry struct {
	cfg   Config
	teams map[string]Strategy
}

// NewRegistry creates an empty registry. Scripts loaded into it see cfg's rules.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		cfg:   cfg,
		teams: make(map[string]Strategy),
	}
}

// Register adds a team
func (r *Registry) Register(name string, s Strategy) error {
	if name == "" || s == nil {
		return fmt.Errorf("register team %q: name and strategy are required", name)
	}
	if _, ok := r.teams[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTeam, name)
	}
	r.teams[name] = s
	return nil
}

// Lookup returns the strategy registered under name
func (r *Registry) Lookup(name string) (Strategy, error) {
	s, ok := r.teams[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, name)
	}
	return s, nil
}

// Names returns the registered team names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.teams))
	for name := range r.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select looks up two distinct teams for the left and right sides
func (r *Registry) Select(left, right string) (Strategy, Strategy, error) {
	if left == right {
		return nil, nil, fmt.Errorf("%w: %s", ErrSameTeam, left)
	}
	l, err := r.Lookup(left)
	if err != nil {
		return nil, nil, err
	}
	rt, err := r.Lookup(right)
	if err != nil {
		return nil, nil, err
	}
	return l, rt, nil
}

// LoadScript compiles a JavaScript team and registers it under name
func (r *Registry) LoadScript(name, code string) error {
	s, err := NewScriptStrategy(name, code, r.cfg)
	if err != nil {
		return err
	}
	return r.Register(name, s)
}

// LoadDir registers every *.js file in dir, named after the file without
// its extension. Files starting with "__" are skipped.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read teams dir: %w", err)
	}
	for _, e := range entries {
		name, ok := teamFileName(e)
		if !ok {
			continue
		}
		code, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("failed to read team %s: %w", name, err)
		}
		if err := r.LoadScript(name, string(code)); err != nil {
			return err
		}
	}
	return nil
}

// LoadEmbedded registers the example scripts compiled into the binary
func (r *Registry) LoadEmbedded() error {
	entries, err := fs.ReadDir(embeddedTeams, "teams")
	if err != nil {
		return fmt.Errorf("failed to read embedded teams: %w", err)
	}
	for _, e := range entries {
		name, ok := teamFileName(e)
		if !ok {
			continue
		}
		code, err := embeddedTeams.ReadFile("teams/" + e.Name())
		if err != nil {
			return fmt.Errorf("failed to read embedded team %s: %w", name, err)
		}
		if err := r.LoadScript(name, string(code)); err != nil {
			return err
		}
	}
	return nil
}

// RegisterBuiltins adds the Go teams "lead" and "spray"
func (r *Registry) RegisterBuiltins(seed int64) error {
	if err := r.Register("lead", NewLeadStrategy(r.cfg, rand.New(rand.NewSource(seed)))); err != nil {
		return err
	}
	return r.Register("spray", NewSprayStrategy(r.cfg, rand.New(rand.NewSource(seed+1))))
}

// DefaultRegistry returns a registry holding the built-in and embedded teams,
// plus the scripts in dir when dir is not empty.
func DefaultRegistry(cfg Config, seed int64, dir string) (*Registry, error) {
	r := NewRegistry(cfg)
	if err := r.RegisterBuiltins(seed); err != nil {
		return nil, err
	}
	if err := r.LoadEmbedded(); err != nil {
		return nil, err
	}
	if dir != "" {
		if err := r.LoadDir(dir); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func teamFileName(e fs.DirEntry) (string, bool) {
	if e.IsDir() || strings.HasPrefix(e.Name(), "__") || filepath.Ext(e.Name()) != ".js" {
		return "", false
	}
	return strings.TrimSuffix(e.Name(), ".js"), true
}
