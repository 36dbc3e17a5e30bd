package step

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/celconex/master-build/buildconfig"
	"github.com/celconex/master-build/delegate"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

var debugHints = []string{
	"- Logs de Metro: ~/.expo/metro-*",
	"- Logs de EAS: ~/.expo/eas-build-*",
	"- Archivos de crash en el directorio del proyecto",
}

func (m MasterBuild) printBanner() {
	m.logger.Printf("%s", colorstring.Magenta("🚀 MASTER BUILD SYSTEM v2.0"))
	m.logger.Printf("%s", colorstring.Magenta(rule))
	m.logger.Println()
}

func (m MasterBuild) printConfig(cfg Config) {
	m.logger.Printf("%s", colorstring.Cyan("📋 CONFIGURACIÓN DEL BUILD"))
	m.logger.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	m.logger.Printf("Tipo de build: %s", cfg.BuildType)
	m.logger.Printf("Plataforma: %s", cfg.Platform)
	m.logger.Printf("Saltar verificaciones: %t", cfg.SkipChecks)
	m.logger.Printf("Limpieza forzada: %t", cfg.ForceClean)
	m.logger.Printf("Auto-submit: %t", cfg.AutoSubmit)
	m.logger.Println()
}

// fail reports a failed pipeline, removes temporary build files and prints debugging hints.
func (m MasterBuild) fail(cfg Config, err error) {
	m.logger.Errorf("❌ %s", failureMessage(err))
	m.logger.Errorf("❌ Build fallido. Limpiando...")

	m.removeTempFiles(cfg)

	m.logger.Warnf("💡 Para debug, revisa:")
	for _, hint := range debugHints {
		m.logger.Printf("%s", hint)
	}
}

// failureMessage describes the cause of a failed stage for the console.
func failureMessage(err error) string {
	var (
		absentErr *delegate.AbsentError
		exitErr   *delegate.ExitError
		stageErr  *StageError
	)
	switch {
	case errors.As(err, &absentErr):
		if absentErr.Script {
			return fmt.Sprintf("Script %s no encontrado", absentErr.Name)
		}
		return fmt.Sprintf("%s no encontrado", absentErr.Name)
	case errors.Is(err, delegate.ErrUnsupportedHost):
		return "Build de iOS solo disponible en macOS"
	case errors.As(err, &exitErr):
		if exitErr.ExitCode > 0 {
			return fmt.Sprintf("%s terminó con código %d", exitErr.Name, exitErr.ExitCode)
		}
		return fmt.Sprintf("%s falló: %v", exitErr.Name, exitErr.Err)
	case errors.As(err, &stageErr):
		return stageErr.Err.Error()
	default:
		return err.Error()
	}
}

// removeTempFiles deletes <tmp>/<app>-build-* on a best-effort basis.
func (m MasterBuild) removeTempFiles(cfg Config) {
	pattern := strings.ToLower(cfg.AppName) + "-build-*"
	matches, err := doublestar.Glob(os.DirFS(m.tempDir), pattern)
	if err != nil {
		m.logger.Warnf("Failed to search temporary files: %s", err)
		return
	}
	for _, match := range matches {
		if err := os.RemoveAll(filepath.Join(m.tempDir, match)); err != nil {
			m.logger.Warnf("Failed to remove %s: %s", match, err)
		}
	}
}

func (m MasterBuild) printSummary(cfg Config, elapsed time.Duration) {
	seconds := int64(elapsed / time.Second)

	m.logger.Println()
	m.logger.Donef("🎉 ¡BUILD COMPLETADO EXITOSAMENTE!")
	m.logger.Printf("%s", colorstring.Cyanf("⏱️  Duración total: %ds", seconds))

	if cfg.BuildType != buildconfig.Production {
		return
	}

	m.logger.Println()
	m.logger.Printf("%s", colorstring.Magenta("🚀 Tu aplicación está lista para publicar!"))
	m.logger.Printf("Próximos pasos:")
	m.logger.Printf("1. 🧪 Prueba la aplicación en dispositivos reales")
	m.logger.Printf("2. 📝 Actualiza la descripción en las tiendas")
	m.logger.Printf("3. 📸 Actualiza screenshots y assets")
	m.logger.Printf("4. 🚀 Publica cuando estés listo")
}
