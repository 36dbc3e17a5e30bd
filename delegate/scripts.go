package delegate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/bitrise-io/go-utils/command"
	"github.com/bitrise-io/go-utils/pathutil"
	"github.com/celconex/master-build/buildconfig"
)

// Collaborator locations, relative to the project root.
const (
	PreBuildCheckScript    = "pre-build-check.sh"
	EnvironmentSetupScript = "configurar-build.sh"
	DeepCleanScript        = "scripts/deep-clean.sh"
	AndroidBuildScript     = "crear-aab.sh"

	androidProjectDir = "android"
)

// Basic clean targets, relative to the project root.
var basicCleanDirs = []string{"node_modules", ".expo"}

// Logger ...
type Logger interface {
	Printf(format string, v ...interface{})
	Donef(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Println()
}

// Settings ...
type Settings struct {
	ProjectRoot string

	EAS string
	NPM string

	EASBuildArgs []string

	GooglePlayKeyPath string
	AppleKeyPath      string
}

// Scripts runs the external scripts and binaries the build stages delegate to.
type Scripts struct {
	settings   Settings
	cmdFactory command.Factory
	logger     Logger

	goos     string
	lookPath func(file string) (string, error)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New ...
func New(settings Settings, cmdFactory command.Factory, logger Logger) *Scripts {
	if settings.EAS == "" {
		settings.EAS = "eas"
	}
	if settings.NPM == "" {
		settings.NPM = "npm"
	}
	if root, err := filepath.Abs(settings.ProjectRoot); err == nil {
		settings.ProjectRoot = root
	}

	return &Scripts{
		settings:   settings,
		cmdFactory: cmdFactory,
		logger:     logger,
		goos:       runtime.GOOS,
		lookPath:   exec.LookPath,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// RunPreBuildChecks ...
func (s *Scripts) RunPreBuildChecks() error {
	return s.runScript(PreBuildCheckScript)
}

// RunEnvironmentSetup ...
func (s *Scripts) RunEnvironmentSetup() error {
	return s.runScript(EnvironmentSetupScript)
}

// RunDeepClean ...
func (s *Scripts) RunDeepClean() error {
	return s.runScript(DeepCleanScript)
}

// RunBasicClean removes the dependency caches and clears the npm cache.
func (s *Scripts) RunBasicClean() error {
	for _, dir := range basicCleanDirs {
		s.logger.Printf("- rm -rf %s", dir)
		if err := os.RemoveAll(s.path(dir)); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}

	npm, err := s.tool(s.settings.NPM, "npm")
	if err != nil {
		return err
	}
	return s.run(npm, []string{"cache", "clean", "--force"})
}

// InstallDependencies ...
func (s *Scripts) InstallDependencies() error {
	npm, err := s.tool(s.settings.NPM, "npm")
	if err != nil {
		return err
	}
	return s.run(npm, []string{"install"})
}

// BuildAndroid ...
func (s *Scripts) BuildAndroid() error {
	return s.runScript(AndroidBuildScript)
}

// BuildIOS runs a remote EAS build using the build type as profile.
func (s *Scripts) BuildIOS(profile buildconfig.BuildType) error {
	if s.goos != "darwin" {
		return fmt.Errorf("%w: %s", ErrUnsupportedHost, s.goos)
	}

	eas, err := s.tool(s.settings.EAS, "EAS CLI")
	if err != nil {
		return err
	}

	args := []string{"build", "--platform", "ios", "--profile", string(profile), "--non-interactive"}
	return s.run(eas, append(args, s.settings.EASBuildArgs...))
}

// SubmitAndroid uploads the latest build to Google Play.
func (s *Scripts) SubmitAndroid() error {
	if err := s.requireCredentials(s.settings.GooglePlayKeyPath); err != nil {
		return err
	}
	return s.submit("android")
}

// SubmitIOS uploads the latest build to the App Store.
// The Apple key is only checked when one is configured, EAS keeps its own credentials otherwise.
func (s *Scripts) SubmitIOS() error {
	if s.settings.AppleKeyPath != "" {
		if err := s.requireCredentials(s.settings.AppleKeyPath); err != nil {
			return err
		}
	}
	return s.submit("ios")
}

func (s *Scripts) submit(platform string) error {
	eas, err := s.tool(s.settings.EAS, "EAS CLI")
	if err != nil {
		return err
	}
	return s.run(eas, []string{"submit", "--platform", platform, "--latest"})
}

func (s *Scripts) requireCredentials(pth string) error {
	exists, err := pathutil.IsPathExists(s.path(pth))
	if err != nil {
		return fmt.Errorf("failed to check path, error: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrCredentialsMissing, pth)
	}
	return nil
}

func (s *Scripts) runScript(rel string) error {
	pth := s.path(rel)
	exists, err := pathutil.IsPathExists(pth)
	if err != nil {
		return fmt.Errorf("failed to check path, error: %w", err)
	}
	isDir, err := pathutil.IsDirExists(pth)
	if err != nil {
		return fmt.Errorf("failed to check path, error: %w", err)
	}
	if !exists || isDir {
		return &AbsentError{Name: rel, Script: true}
	}

	if err := os.Chmod(pth, 0o755); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", rel, err)
	}

	return s.run(pth, nil)
}

func (s *Scripts) tool(name, label string) (string, error) {
	pth, err := s.lookPath(name)
	if err != nil {
		return "", &AbsentError{Name: label}
	}
	return pth, nil
}

func (s *Scripts) run(name string, args []string) error {
	cmdOpts := command.Opts{
		Dir:    s.settings.ProjectRoot,
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
	}
	cmd := s.cmdFactory.Create(name, args, &cmdOpts)

	s.logger.Println()
	s.logger.Donef("$ %s", cmd.PrintableCommandArgs())
	s.logger.Println()

	if err := cmd.Run(); err != nil {
		exitCode := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &ExitError{Name: filepath.Base(name), ExitCode: exitCode, Err: err}
	}

	return nil
}

func (s *Scripts) path(pth string) string {
	if filepath.IsAbs(pth) {
		return pth
	}
	return filepath.Join(s.settings.ProjectRoot, pth)
}
