// Package update implements self-updating from GitHub releases.
package update

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/kcaldas/promptpack/pkg/version"
)

const (
	githubOwner = "kcaldas"
	githubRepo  = "promptpack"
)

// Info describes an available update.
type Info struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseNotes   string
	UpdateNeeded   bool
}

// Updater checks for and applies new releases.
type Updater struct {
	updater    *selfupdate.Updater
	repository selfupdate.Repository
}

func NewUpdater() (*Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return &Updater{
		updater:    updater,
		repository: selfupdate.NewRepositorySlug(githubOwner, githubRepo),
	}, nil
}

// Check reports whether a newer release exists.
func (u *Updater) Check(ctx context.Context) (*Info, error) {
	latest, found, err := u.updater.DetectLatest(ctx, u.repository)
	if err != nil {
		return nil, fmt.Errorf("failed to detect latest version: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no releases found")
	}

	current := version.GetVersion()
	return &Info{
		CurrentVersion: current,
		LatestVersion:  latest.Version(),
		ReleaseNotes:   latest.ReleaseNotes,
		UpdateNeeded:   updateNeeded(current, latest.Version()),
	}, nil
}

// Apply replaces the running executable with the latest release.
func (u *Updater) Apply(ctx context.Context) error {
	latest, found, err := u.updater.DetectLatest(ctx, u.repository)
	if err != nil {
		return fmt.Errorf("failed to detect latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no releases found")
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := u.updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	return nil
}

// updateNeeded compares versions with semver; a development build or an
// unparsable current version always wants the latest release.
func updateNeeded(current, latest string) bool {
	if current == "dev" || current == "" {
		return true
	}
	cur, err := semver.NewVersion(current)
	if err != nil {
		return true
	}
	lat, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return lat.GreaterThan(cur)
}
