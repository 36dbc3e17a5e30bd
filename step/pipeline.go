package step

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/bitrise-io/go-android/gradle"
	"github.com/bitrise-io/go-steputils/cache"
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/celconex/master-build/buildconfig"
	"github.com/celconex/master-build/delegate"
	"github.com/celconex/master-build/report"
)

// Collaborators are the external scripts and tools the stages delegate to.
// A missing collaborator is reported with delegate.ErrAbsent.
type Collaborators interface {
	RunPreBuildChecks() error
	RunEnvironmentSetup() error
	RunDeepClean() error
	RunBasicClean() error
	InstallDependencies() error
	BuildAndroid() error
	CollectAndroidCache(level cache.Level) error
	BuildIOS(profile buildconfig.BuildType) error
	SubmitAndroid() error
	SubmitIOS() error
	AndroidArtifacts(started time.Time) ([]gradle.Artifact, error)
}

// CollaboratorFactory builds the collaborators for a resolved configuration.
type CollaboratorFactory func(cfg Config) Collaborators

type stage struct {
	name Stage
	run  func(cfg Config, c Collaborators) error
}

func (m MasterBuild) stages() []stage {
	return []stage{
		{name: StagePreBuildChecks, run: m.preBuildChecks},
		{name: StageEnvironmentSetup, run: m.environmentSetup},
		{name: StageDeepClean, run: m.deepClean},
		{name: StageBuild, run: m.build},
		{name: StageSubmit, run: m.submit},
	}
}

// Run executes the stages in order and stops at the first failing one.
func (m MasterBuild) Run(cfg Config, c Collaborators) error {
	for _, s := range m.stages() {
		if err := s.run(cfg, c); err != nil {
			return newStageError(s.name, err)
		}
	}
	return nil
}

// Report writes the build report and returns its path.
func (m MasterBuild) Report(cfg Config, c Collaborators, started time.Time) (string, error) {
	created := m.now()

	artifacts, err := report.FindLocalArtifacts(cfg.ProjectRoot)
	if err != nil {
		m.logger.Warnf("%s", err)
	}

	if cfg.Platform.Includes(buildconfig.Android) {
		gradleArtifacts, err := c.AndroidArtifacts(started)
		if err != nil && !errors.Is(err, delegate.ErrAbsent) {
			m.logger.Warnf("Failed to list Gradle artifacts: %s", err)
		}
		for _, ga := range gradleArtifacts {
			artifact, err := report.Stat(ga.Path)
			if err != nil {
				m.logger.Warnf("%s", err)
				continue
			}
			if rel, err := filepath.Rel(cfg.ProjectRoot, ga.Path); err == nil {
				artifact.Path = rel
			}
			artifacts = append(artifacts, artifact)
		}
	}

	pth, err := report.Write(cfg.ReportDir, report.Report{
		AppName:   cfg.AppName,
		Created:   created,
		Options:   cfg.Options,
		Artifacts: artifacts,
		Duration:  created.Sub(started),
	})
	if err != nil {
		return "", err
	}

	m.logger.Donef("📄 Reporte de build creado: %s", pth)

	if err := m.exportEnv(reportPathEnvKey, pth); err != nil {
		m.logger.Warnf("failed to export environment variable: %s", reportPathEnvKey)
	}

	return pth, nil
}

func (m MasterBuild) preBuildChecks(cfg Config, c Collaborators) error {
	if cfg.SkipChecks {
		m.logger.Printf("%s", colorstring.Yellow("⏭️  Saltando verificaciones pre-build"))
		return nil
	}

	m.section("🔍 Ejecutando verificaciones pre-build...")
	return m.optional(c.RunPreBuildChecks(), "⚠️  Script de verificación no encontrado")
}

func (m MasterBuild) environmentSetup(_ Config, c Collaborators) error {
	m.section("⚙️  Configurando entorno...")
	return m.optional(c.RunEnvironmentSetup(), "⚠️  Script de configuración no encontrado")
}

func (m MasterBuild) deepClean(cfg Config, c Collaborators) error {
	if !cfg.ForceClean {
		return nil
	}

	m.section("🧹 Ejecutando limpieza profunda...")
	err := c.RunDeepClean()
	if errors.Is(err, delegate.ErrAbsent) {
		m.logger.Warnf("⚠️  Script de limpieza no encontrado, ejecutando limpieza básica")
		err = c.RunBasicClean()
	}
	if err != nil {
		return err
	}

	m.section("📦 Reinstalando dependencias...")
	return c.InstallDependencies()
}

func (m MasterBuild) build(cfg Config, c Collaborators) error {
	if cfg.Platform.Includes(buildconfig.Android) {
		if err := m.buildAndroid(cfg, c); err != nil {
			return err
		}
	}
	if cfg.Platform.Includes(buildconfig.IOS) {
		m.logger.Infof("🍎 Construyendo para iOS (perfil %s)...", cfg.BuildType.Title())
		if err := c.BuildIOS(cfg.BuildType); err != nil {
			return err
		}
	}
	return nil
}

func (m MasterBuild) buildAndroid(cfg Config, c Collaborators) error {
	m.logger.Donef("🤖 Construyendo para Android...")
	if err := c.BuildAndroid(); err != nil {
		return err
	}

	if cfg.CacheLevel == cache.LevelNone {
		return nil
	}

	m.logger.Println()
	m.logger.Infof("Collecting cache:")
	if warning := c.CollectAndroidCache(cfg.CacheLevel); warning != nil {
		m.logger.Warnf("%s", warning)
		return nil
	}
	m.logger.Donef("Done")
	return nil
}

func (m MasterBuild) submit(cfg Config, c Collaborators) error {
	if !cfg.AutoSubmit {
		return nil
	}

	m.section("🚀 Subiendo a tiendas de aplicaciones...")

	if cfg.Platform.Includes(buildconfig.Android) {
		m.logger.Donef("📤 Subiendo a Google Play Store...")
		err := c.SubmitAndroid()
		if errors.Is(err, delegate.ErrCredentialsMissing) {
			m.logger.Warnf("⚠️  %s no encontrado", cfg.GooglePlayKeyPath)
			m.logger.Printf("Sube manualmente el AAB a Google Play Console")
		} else if err != nil {
			return err
		}
	}

	if cfg.Platform.Includes(buildconfig.IOS) {
		m.logger.Infof("📤 Subiendo a Apple App Store...")
		err := c.SubmitIOS()
		if errors.Is(err, delegate.ErrCredentialsMissing) {
			m.logger.Warnf("⚠️  %s no encontrado", cfg.AppleKeyPath)
			m.logger.Printf("Sube manualmente el IPA a App Store Connect")
		} else if err != nil {
			return err
		}
	}

	return nil
}

// optional turns a missing collaborator into a warning.
func (m MasterBuild) optional(err error, warning string) error {
	if errors.Is(err, delegate.ErrAbsent) {
		m.logger.Warnf("%s", warning)
		return nil
	}
	return err
}

func (m MasterBuild) section(title string) {
	m.logger.Println()
	m.logger.Printf("%s", colorstring.Cyan(title))
}
