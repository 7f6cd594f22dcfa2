package version

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// maxBuildIDLen bounds the length of an identifier build qualifier.
const maxBuildIDLen = 32

// ErrInvalidComponent is matched by every construction error.
var ErrInvalidComponent = errors.New("invalid version component")

// ComponentError reports which component was rejected and why.
type ComponentError struct {
	Component string
	Value     string
	Reason    string
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("invalid version component %s=%q: %s", e.Component, e.Value, e.Reason)
}

func (e *ComponentError) Unwrap() error {
	return ErrInvalidComponent
}

// Info is a major.minor.patch triple with an optional build qualifier.
// The zero value is 0.0.0; use New to build anything else.
type Info struct {
	major, minor, patch int
	build               string
	hasBuild            bool
	str                 string
}

// Option sets the build qualifier on an Info.
type Option func(*Info) error

// WithBuild sets a numeric build qualifier.
func WithBuild(n int) Option {
	return func(i *Info) error {
		if n < 0 {
			return &ComponentError{Component: "build", Value: strconv.Itoa(n), Reason: "must not be negative"}
		}
		i.build = strconv.Itoa(n)
		i.hasBuild = true
		return nil
	}
}

// WithBuildID sets an identifier build qualifier such as "rc1".
// Only ASCII letters, digits and '-' are accepted.
func WithBuildID(id string) Option {
	return func(i *Info) error {
		if err := validateBuildID(id); err != nil {
			return err
		}
		i.build = id
		i.hasBuild = true
		return nil
	}
}

func validateBuildID(id string) error {
	if id == "" {
		return &ComponentError{Component: "build", Value: id, Reason: "must not be empty"}
	}
	if len(id) > maxBuildIDLen {
		return &ComponentError{Component: "build", Value: id, Reason: fmt.Sprintf("longer than %d bytes", maxBuildIDLen)}
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
		default:
			return &ComponentError{Component: "build", Value: id, Reason: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return nil
}

// New validates the components and returns an immutable Info.
func New(major, minor, patch int, opts ...Option) (Info, error) {
	for _, c := range []struct {
		name string
		v    int
	}{{"major", major}, {"minor", minor}, {"patch", patch}} {
		if c.v < 0 {
			return Info{}, &ComponentError{Component: c.name, Value: strconv.Itoa(c.v), Reason: "must not be negative"}
		}
	}

	i := Info{major: major, minor: minor, patch: patch}
	for _, opt := range opts {
		if err := opt(&i); err != nil {
			return Info{}, err
		}
	}
	i.str = i.format()
	return i, nil
}

// MustNew is like New but panics on error.
func MustNew(major, minor, patch int, opts ...Option) Info {
	i, err := New(major, minor, patch, opts...)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Info) format() string {
	parts := []string{strconv.Itoa(i.major), strconv.Itoa(i.minor), strconv.Itoa(i.patch)}
	if i.hasBuild {
		parts = append(parts, i.build)
	}
	return strings.Join(parts, ".")
}

// Major returns the major component.
func (i Info) Major() int { return i.major }

// Minor returns the minor component.
func (i Info) Minor() int { return i.minor }

// Patch returns the patch component.
func (i Info) Patch() int { return i.patch }

// Build returns the build qualifier and whether one is set.
func (i Info) Build() (string, bool) {
	return i.build, i.hasBuild
}

// String renders MAJOR.MINOR.PATCH, followed by .BUILD when a build is set.
func (i Info) String() string {
	if i.str == "" {
		// zero value never went through New
		return i.format()
	}
	return i.str
}

type yamlInfo struct {
	Major  int    `yaml:"major"`
	Minor  int    `yaml:"minor"`
	Patch  int    `yaml:"patch"`
	Build  string `yaml:"build,omitempty"`
	String string `yaml:"string"`
}

// MarshalYAML implements yaml.Marshaler.
func (i Info) MarshalYAML() (interface{}, error) {
	return yamlInfo{
		Major:  i.major,
		Minor:  i.minor,
		Patch:  i.patch,
		Build:  i.build,
		String: i.String(),
	}, nil
}

// current is the transfuse release. Bump it according to Semantic Versioning 2.0.
var current = MustNew(0, 4, 4)

// Current returns the transfuse release.
func Current() Info {
	return current
}

// Version returns the dotted form of Current, shown in help text and
// embedded in package metadata.
func Version() string {
	return current.String()
}

var (
	// BuildTime is the build timestamp, set via ldflags at build time
	BuildTime = "unknown"

	// GitCommit is the git commit hash, set via ldflags at build time
	GitCommit = "unknown"
)

// BuildInfo is everything the version command reports.
type BuildInfo struct {
	Version   Info   `yaml:"version"`
	BuildTime string `yaml:"build_time"`
	GitCommit string `yaml:"git_commit"`
	GoVersion string `yaml:"go_version"`
}

// Get returns the release version together with the ldflags build metadata.
func Get() BuildInfo {
	return BuildInfo{
		Version:   current,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
}
