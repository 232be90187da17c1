// Package settings resolves named paging profiles.
//
// A value is taken from the first place that has it: the explicit value
// passed by the caller, the named profile, then the hard-coded fallback.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "default"

// Resolver looks up a raw setting value for a profile.
type Resolver interface {
	Lookup(profile, key string) (string, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(profile, key string) (string, bool)

func (f ResolverFunc) Lookup(profile, key string) (string, bool) {
	return f(profile, key)
}

// Chain asks each resolver in order and returns the first hit.
type Chain []Resolver

func (c Chain) Lookup(profile, key string) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if v, ok := r.Lookup(profile, key); ok {
			return v, true
		}
	}
	return "", false
}

// Empty never finds anything, so every lookup falls back.
var Empty Resolver = ResolverFunc(func(string, string) (string, bool) { return "", false })

// =============================================================================
// YAML profiles file
// =============================================================================

// YAMLSource serves profiles from a document shaped like:
//
//	profiles:
//	  default:
//	    page-size: 25
//	    show-prev-next: true
type YAMLSource struct {
	profiles map[string]map[string]string
}

type yamlDocument struct {
	Profiles map[string]map[string]string `yaml:"profiles"`
}

// ParseYAML decodes a profiles document.
func ParseYAML(b []byte) (*YAMLSource, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string]map[string]string{}
	}
	return &YAMLSource{profiles: doc.Profiles}, nil
}

// LoadYAML reads and decodes a profiles file.
func LoadYAML(path string) (*YAMLSource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	return ParseYAML(b)
}

func (s *YAMLSource) Lookup(profile, key string) (string, bool) {
	p, ok := s.profiles[profile]
	if !ok {
		return "", false
	}
	v, ok := p[key]
	return v, ok
}

// Profiles returns the names of the loaded profiles.
func (s *YAMLSource) Profiles() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	return names
}

// =============================================================================
// Environment
// =============================================================================

// EnvSource reads PREFIX_PROFILE_KEY variables, upper-cased with dashes
// turned into underscores, e.g. PAGING_DEFAULT_PAGE_SIZE.
type EnvSource struct {
	Prefix string
	lookup func(string) (string, bool)
}

// NewEnvSource returns a source backed by the process environment.
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{Prefix: prefix, lookup: os.LookupEnv}
}

func (s *EnvSource) Lookup(profile, key string) (string, bool) {
	v, ok := s.lookup(EnvName(s.Prefix, profile, key))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// EnvName builds the variable name for a profile key.
func EnvName(prefix, profile, key string) string {
	parts := []string{profile, key}
	if prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	name := strings.Join(parts, "_")
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// =============================================================================
// Typed lookups
// =============================================================================

// String returns the profile value for key or fallback.
func String(r Resolver, profile, key, fallback string) string {
	if v, ok := r.Lookup(profile, key); ok {
		return v
	}
	return fallback
}

// Int returns the profile value for key or fallback when it is missing or
// not an integer.
func Int(r Resolver, profile, key string, fallback int) int {
	if v, ok := r.Lookup(profile, key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

// Bool returns the profile value for key or fallback when it is missing or
// not a boolean.
func Bool(r Resolver, profile, key string, fallback bool) bool {
	if v, ok := r.Lookup(profile, key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
