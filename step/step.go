package step

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitrise-io/go-steputils/cache"
	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-steputils/tools"
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/sliceutil"
	"github.com/celconex/master-build/buildconfig"
	"github.com/kballard/go-shellquote"
)

// Input ...
type Input struct {
	ProjectRoot   string `env:"MASTER_BUILD_PROJECT_ROOT"`
	ReportDir     string `env:"MASTER_BUILD_REPORT_DIR"`
	AppName       string `env:"MASTER_BUILD_APP_NAME"`
	EASArgs       string `env:"MASTER_BUILD_EAS_ARGS"`
	GooglePlayKey string `env:"MASTER_BUILD_GOOGLE_PLAY_KEY"`
	AppleKey      string `env:"MASTER_BUILD_APPLE_KEY"`
	CacheLevel    string `env:"MASTER_BUILD_CACHE_LEVEL"`
	AssumeYes     string `env:"MASTER_BUILD_ASSUME_YES"`
}

// Config ...
type Config struct {
	buildconfig.Options

	ProjectRoot string
	ReportDir   string
	AppName     string

	EASArgs           []string
	GooglePlayKeyPath string
	AppleKeyPath      string

	CacheLevel cache.Level
	AssumeYes  bool
}

const (
	defaultAppName       = "CelConex"
	defaultGooglePlayKey = "google-play-service-account.json"

	reportPathEnvKey = "MASTER_BUILD_REPORT_PATH"
)

var cacheLevels = []string{string(cache.LevelNone), string(cache.LevelDeps), string(cache.LevelAll)}

// Logger is the part of log.Logger the pipeline writes to.
type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Printf(format string, v ...interface{})
	Donef(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Println()
}

// Prompter ...
type Prompter interface {
	Confirm(message string) (bool, error)
	Interactive() bool
}

// MasterBuild ...
type MasterBuild struct {
	program          string
	inputParser      stepconf.InputParser
	logger           Logger
	prompter         Prompter
	newCollaborators CollaboratorFactory

	out       io.Writer
	getwd     func() (string, error)
	now       func() time.Time
	tempDir   string
	exportEnv func(key, value string) error
}

// NewMasterBuild ...
func NewMasterBuild(program string, inputParser stepconf.InputParser, logger Logger, prompter Prompter, newCollaborators CollaboratorFactory) *MasterBuild {
	return &MasterBuild{
		program:          program,
		inputParser:      inputParser,
		logger:           logger,
		prompter:         prompter,
		newCollaborators: newCollaborators,
		out:              os.Stdout,
		getwd:            os.Getwd,
		now:              time.Now,
		tempDir:          os.TempDir(),
		exportEnv:        exportWithEnvman,
	}
}

// Execute runs the whole build for the given command line and returns the process exit code.
func (m MasterBuild) Execute(args []string) int {
	started := m.now()
	m.printBanner()

	cfg, err := m.ProcessConfig(args)
	switch {
	case errors.Is(err, buildconfig.ErrHelp):
		buildconfig.Usage(m.out, m.program)
		return 0
	case errors.Is(err, buildconfig.ErrUsage):
		m.logger.Errorf("❌ %v", err)
		buildconfig.Usage(m.out, m.program)
		return 1
	case err != nil:
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			err = stageErr.Err
		}
		m.logger.Errorf("❌ %v", err)
		return 1
	}

	m.printConfig(cfg)

	proceed, err := m.Confirm(cfg)
	if err != nil {
		m.logger.Errorf("❌ %v", err)
		return 1
	}
	if !proceed {
		m.logger.Printf("Build cancelado")
		return 0
	}

	m.logger.Printf("%s", colorstring.Cyan("🚀 Iniciando proceso de build..."))
	m.logger.Println()

	collaborators := m.newCollaborators(cfg)
	if err := m.Run(cfg, collaborators); err != nil {
		m.fail(cfg, err)
		return 1
	}

	if _, err := m.Report(cfg, collaborators, started); err != nil {
		m.fail(cfg, newStageError(StageReport, err))
		return 1
	}

	m.printSummary(cfg, m.now().Sub(started))
	return 0
}

// ProcessConfig parses and validates the command line and reads the ambient settings.
func (m MasterBuild) ProcessConfig(args []string) (Config, error) {
	flags, err := buildconfig.Parse(m.program, args)
	if err != nil {
		return Config{}, err
	}

	opts, err := buildconfig.Validate(flags)
	if err != nil {
		return Config{}, configError(err)
	}
	if buildconfig.Downgraded(flags, opts) {
		m.logger.Warnf("⚠️  Auto-submit solo disponible para builds de producción")
	}

	var input Input
	if err := m.inputParser.Parse(&input); err != nil {
		return Config{}, configError(err)
	}
	stepconf.Print(input)

	cfg := Config{
		Options:           opts,
		ProjectRoot:       input.ProjectRoot,
		ReportDir:         input.ReportDir,
		AppName:           input.AppName,
		GooglePlayKeyPath: input.GooglePlayKey,
		AppleKeyPath:      input.AppleKey,
		CacheLevel:        cache.LevelNone,
		AssumeYes:         isYes(input.AssumeYes),
	}

	if cfg.ProjectRoot == "" {
		if cfg.ProjectRoot, err = m.getwd(); err != nil {
			return Config{}, configError(fmt.Errorf("failed to get working directory: %w", err))
		}
	}
	if cfg.ProjectRoot, err = filepath.Abs(cfg.ProjectRoot); err != nil {
		return Config{}, configError(fmt.Errorf("failed to resolve project root: %w", err))
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = cfg.ProjectRoot
	}
	if cfg.AppName == "" {
		cfg.AppName = defaultAppName
	}
	if cfg.GooglePlayKeyPath == "" {
		cfg.GooglePlayKeyPath = defaultGooglePlayKey
	}

	if input.CacheLevel != "" {
		if !sliceutil.IsStringInSlice(input.CacheLevel, cacheLevels) {
			return Config{}, configError(fmt.Errorf("nivel de cache inválido: %s (niveles válidos: %s)", input.CacheLevel, strings.Join(cacheLevels, ", ")))
		}
		cfg.CacheLevel = cache.Level(input.CacheLevel)
	}

	if cfg.EASArgs, err = shellquote.Split(input.EASArgs); err != nil {
		return Config{}, configError(fmt.Errorf("failed to parse EAS arguments: %w", err))
	}

	return cfg, nil
}

// Confirm asks for an explicit go-ahead before production builds.
func (m MasterBuild) Confirm(cfg Config) (bool, error) {
	if cfg.BuildType != buildconfig.Production {
		return true, nil
	}

	m.logger.Warnf("⚠️  Estás a punto de crear un build de PRODUCCIÓN")
	if cfg.AssumeYes {
		m.logger.Printf("Confirmado por MASTER_BUILD_ASSUME_YES")
		return true, nil
	}
	if !m.prompter.Interactive() {
		m.logger.Printf("La entrada no es una terminal, usa MASTER_BUILD_ASSUME_YES=yes para builds desatendidos")
	}

	return m.prompter.Confirm("¿Continuar?")
}

func configError(err error) error {
	return &StageError{Stage: StageConfiguration, Kind: KindConfiguration, Err: err}
}

func isYes(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

func exportWithEnvman(key, value string) error {
	if _, err := exec.LookPath("envman"); err != nil {
		return nil
	}
	return tools.ExportEnvironmentWithEnvman(key, value)
}
