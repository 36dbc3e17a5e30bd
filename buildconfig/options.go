package buildconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/sliceutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildType ...
type BuildType string

// Platform ...
type Platform string

const (
	Development BuildType = "development"
	Preview     BuildType = "preview"
	Production  BuildType = "production"

	Android Platform = "android"
	IOS     Platform = "ios"
	All     Platform = "all"
)

var (
	buildTypes = []string{string(Development), string(Preview), string(Production)}
	platforms  = []string{string(Android), string(IOS), string(All)}
)

// ErrInvalidValue is returned when a build type or platform is outside its enumeration.
var ErrInvalidValue = errors.New("valor inválido")

// ParseBuildType ...
func ParseBuildType(s string) (BuildType, error) {
	if !sliceutil.IsStringInSlice(s, buildTypes) {
		return "", fmt.Errorf("%w para tipo de build: %s (tipos válidos: %s)", ErrInvalidValue, s, strings.Join(buildTypes, ", "))
	}
	return BuildType(s), nil
}

// ParsePlatform ...
func ParsePlatform(s string) (Platform, error) {
	if !sliceutil.IsStringInSlice(s, platforms) {
		return "", fmt.Errorf("%w para plataforma: %s (plataformas válidas: %s)", ErrInvalidValue, s, strings.Join(platforms, ", "))
	}
	return Platform(s), nil
}

// Title returns the build type as a display name, eg. "Production".
func (t BuildType) Title() string {
	return cases.Title(language.Und).String(string(t))
}

// Includes reports whether building for p also builds for target.
func (p Platform) Includes(target Platform) bool {
	return p == target || p == All
}

// Options is the validated build configuration. It is built once from the command line
// and passed by value to every stage.
type Options struct {
	BuildType  BuildType
	Platform   Platform
	SkipChecks bool
	ForceClean bool
	AutoSubmit bool
}

// Flags holds the raw command line values before validation.
type Flags struct {
	Type       string
	Platform   string
	SkipChecks bool
	Clean      bool
	AutoSubmit bool
	Quick      bool
}

// Validate turns raw flags into Options.
// Auto-submit is only kept for production builds, use Downgraded to detect the change.
func Validate(f Flags) (Options, error) {
	buildType, err := ParseBuildType(f.Type)
	if err != nil {
		return Options{}, err
	}

	platform, err := ParsePlatform(f.Platform)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		BuildType:  buildType,
		Platform:   platform,
		SkipChecks: f.SkipChecks,
		ForceClean: f.Clean,
		AutoSubmit: f.AutoSubmit && buildType == Production,
	}

	if f.Quick {
		opts.SkipChecks = true
		opts.ForceClean = false
	}

	return opts, nil
}

// Downgraded reports whether auto-submit was requested but dropped by Validate.
func Downgraded(f Flags, opts Options) bool {
	return f.AutoSubmit && !opts.AutoSubmit
}
