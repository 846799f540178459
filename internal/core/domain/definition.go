package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Subcommand is the fixed subcommand passed to the build tool.
const Subcommand = "build"

// Profile names a build profile understood by the build tool.
type Profile string

// Profiles the cargo toolchain ships with. Custom profiles are accepted as well.
const (
	ProfileDev     Profile = "dev"
	ProfileRelease Profile = "release"
	ProfileTest    Profile = "test"
	ProfileBench   Profile = "bench"
)

// IsKnown reports whether p is one of the built-in profiles.
func (p Profile) IsKnown() bool {
	switch p {
	case ProfileDev, ProfileRelease, ProfileTest, ProfileBench:
		return true
	default:
		return false
	}
}

// String returns the profile name.
func (p Profile) String() string {
	return string(p)
}

// BuildDefinition is the immutable description of a single build tool invocation.
// It can only be obtained through NewBuildDefinition, which guarantees that target
// and profile are populated.
type BuildDefinition struct {
	target   string
	profile  Profile
	pkg      string
	features []string
}

// DefinitionOption configures optional parts of a BuildDefinition.
type DefinitionOption func(*BuildDefinition)

// WithPackage restricts the build to a single package.
func WithPackage(name string) DefinitionOption {
	return func(d *BuildDefinition) {
		d.pkg = strings.TrimSpace(name)
	}
}

// WithFeatures enables the given features. Empty entries are dropped.
func WithFeatures(features ...string) DefinitionOption {
	return func(d *BuildDefinition) {
		for _, f := range features {
			if f = strings.TrimSpace(f); f != "" {
				d.features = append(d.features, f)
			}
		}
	}
}

// NewBuildDefinition validates target and profile and returns a BuildDefinition.
// Values are not checked against any list of known triples or profiles; the build
// tool is the only authority on those.
func NewBuildDefinition(target, profile string, opts ...DefinitionOption) (BuildDefinition, error) {
	if strings.TrimSpace(target) == "" {
		return BuildDefinition{}, ErrEmptyTarget
	}
	if strings.TrimSpace(profile) == "" {
		return BuildDefinition{}, zerr.With(zerr.Wrap(ErrEmptyProfile, "invalid build definition"), "target", target)
	}

	d := BuildDefinition{
		target:  target,
		profile: Profile(profile),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d, nil
}

// Target returns the compilation target triple.
func (d BuildDefinition) Target() string {
	return d.target
}

// Profile returns the build profile.
func (d BuildDefinition) Profile() Profile {
	return d.profile
}

// Package returns the package the build is restricted to, or "" for the whole workspace.
func (d BuildDefinition) Package() string {
	return d.pkg
}

// Features returns a copy of the enabled features.
func (d BuildDefinition) Features() []string {
	if len(d.features) == 0 {
		return nil
	}
	out := make([]string, len(d.features))
	copy(out, d.features)
	return out
}

// IsZero reports whether d was not produced by NewBuildDefinition.
func (d BuildDefinition) IsZero() bool {
	return d.target == "" || d.profile == ""
}

// Args returns the argument list for the build tool.
// The first five elements are always: build --target <target> --profile <profile>.
func (d BuildDefinition) Args() []string {
	args := []string{Subcommand, "--target", d.target, "--profile", string(d.profile)}
	if d.pkg != "" {
		args = append(args, "--package", d.pkg)
	}
	if len(d.features) > 0 {
		args = append(args, "--features", strings.Join(d.features, ","))
	}
	return args
}

// Fingerprint returns a short stable identifier derived from the argument list.
func (d BuildDefinition) Fingerprint() string {
	h := xxhash.New()
	for _, arg := range d.Args() {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// String renders the definition as "<target>/<profile>".
func (d BuildDefinition) String() string {
	return d.target + "/" + string(d.profile)
}
