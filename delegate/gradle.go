package delegate

import (
	"fmt"
	"strings"
	"time"

	androidcache "github.com/bitrise-io/go-android/cache"
	"github.com/bitrise-io/go-android/gradle"
	"github.com/bitrise-io/go-steputils/cache"
	"github.com/bitrise-io/go-utils/pathutil"
)

var androidAppPathPatterns = []string{
	"*/build/outputs/bundle/*.aab",
	"*/build/outputs/apk/*.apk",
}

// GradleProjectWrapper ...
type GradleProjectWrapper interface {
	FindArtifacts(generatedAfter time.Time, pattern string, includeModuleInName bool) ([]gradle.Artifact, error)
}

// CollectAndroidCache collects the Gradle caches of the native Android project.
func (s *Scripts) CollectAndroidCache(level cache.Level) error {
	location, err := s.androidProject()
	if err != nil {
		return err
	}
	return androidcache.Collect(location, level, s.cmdFactory)
}

// AndroidArtifacts lists the app bundles and APKs Gradle left in the native Android project.
func (s *Scripts) AndroidArtifacts(started time.Time) ([]gradle.Artifact, error) {
	location, err := s.androidProject()
	if err != nil {
		return nil, err
	}

	gradleProject, err := gradle.NewProject(location, s.cmdFactory)
	if err != nil {
		return nil, fmt.Errorf("failed to open Gradle project: %w", err)
	}

	return s.getArtifacts(gradleProject, started, androidAppPathPatterns), nil
}

func (s *Scripts) androidProject() (string, error) {
	location := s.path(androidProjectDir)
	exists, err := pathutil.IsDirExists(location)
	if err != nil {
		return "", fmt.Errorf("failed to check path, error: %w", err)
	}
	if !exists {
		return "", &AbsentError{Name: androidProjectDir}
	}
	return location, nil
}

func (s *Scripts) getArtifacts(gradleProject GradleProjectWrapper, started time.Time, patterns []string) (artifacts []gradle.Artifact) {
	for _, pattern := range patterns {
		afs, err := gradleProject.FindArtifacts(started, pattern, false)
		if err != nil {
			s.logger.Warnf("Failed to find artifact with pattern ( %s ), error: %s", pattern, err)
			continue
		}
		artifacts = append(artifacts, afs...)
	}

	if len(artifacts) == 0 && !started.IsZero() {
		s.logger.Printf("No app files found with patterns: %s that has modification time after: %s, retrying without modtime check", strings.Join(patterns, ", "), started)
		return s.getArtifacts(gradleProject, time.Time{}, patterns)
	}
	return
}
