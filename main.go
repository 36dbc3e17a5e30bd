package main

import (
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-utils/command"
	"github.com/bitrise-io/go-utils/env"
	"github.com/bitrise-io/go-utils/log"
	"github.com/celconex/master-build/delegate"
	"github.com/celconex/master-build/interaction"
	"github.com/celconex/master-build/step"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	envRepository := env.NewRepository()
	cmdFactory := command.NewFactory(envRepository)
	logger := log.NewLogger()
	inputParser := stepconf.NewInputParser(envRepository)

	masterBuild := step.NewMasterBuild(
		programName(args),
		inputParser,
		logger,
		interaction.NewPrompter(),
		collaborators(cmdFactory, logger),
	)

	if len(args) == 0 {
		return masterBuild.Execute(nil)
	}
	return masterBuild.Execute(args[1:])
}

func collaborators(cmdFactory command.Factory, logger log.Logger) step.CollaboratorFactory {
	return func(cfg step.Config) step.Collaborators {
		return delegate.New(delegate.Settings{
			ProjectRoot:       cfg.ProjectRoot,
			EASBuildArgs:      cfg.EASArgs,
			GooglePlayKeyPath: cfg.GooglePlayKeyPath,
			AppleKeyPath:      cfg.AppleKeyPath,
		}, cmdFactory, logger)
	}
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "master-build"
	}
	return filepath.Base(args[0])
}
