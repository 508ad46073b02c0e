// Package selfupdate replaces the running binary with the latest
// release asset published for this platform.
package selfupdate

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/github"
)

// Release coordinates of the published binaries.
const (
	ReleaseOwner = "jhughes-dev"
	ReleaseRepo  = "Minecraft-Mod-Starter"
)

// assetNames maps GOOS/GOARCH pairs to the release asset published for
// that platform.
var assetNames = map[string]string{
	"linux/amd64":   "mcmod-linux-x86_64",
	"darwin/amd64":  "mcmod-macos-x86_64",
	"darwin/arm64":  "mcmod-macos-aarch64",
	"windows/amd64": "mcmod-windows-x86_64.exe",
}

// UnsupportedPlatformError signals that no release asset exists for the
// running platform.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no release binary is published for %s/%s", e.OS, e.Arch)
}

// Result describes the outcome of an update run
type Result struct {
	CurrentVersion string
	LatestVersion  string
	Updated        bool
}

// Updater checks the latest release and swaps the binary in place
type Updater struct {
	client   github.GitHubClient
	replacer Replacer

	currentVersion string
	goos           string
	goarch         string
}

// NewUpdater creates an updater for the running platform
func NewUpdater(fs filesystem.FileSystem, client github.GitHubClient, currentVersion string) *Updater {
	return &Updater{
		client:         client,
		replacer:       newReplacer(fs, runtime.GOOS),
		currentVersion: currentVersion,
		goos:           runtime.GOOS,
		goarch:         runtime.GOARCH,
	}
}

// newUpdaterForPlatform is the test constructor with every platform
// dependency injected.
func newUpdaterForPlatform(client github.GitHubClient, replacer Replacer, currentVersion, goos, goarch string) *Updater {
	return &Updater{
		client:         client,
		replacer:       replacer,
		currentVersion: currentVersion,
		goos:           goos,
		goarch:         goarch,
	}
}

// Run fetches the latest release and, when it is newer than the running
// version, downloads this platform's asset and replaces the binary at
// execPath. An up-to-date binary is left untouched.
func (u *Updater) Run(ctx context.Context, execPath string) (*Result, error) {
	current, err := semver.NewVersion(strings.TrimPrefix(u.currentVersion, "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid running version %q: %w", u.currentVersion, err)
	}

	release, err := u.client.GetLatestRelease(ctx, ReleaseOwner, ReleaseRepo)
	if err != nil {
		return nil, err
	}

	latest, err := semver.NewVersion(strings.TrimPrefix(release.TagName, "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid release tag %q: %w", release.TagName, err)
	}

	result := &Result{
		CurrentVersion: current.String(),
		LatestVersion:  latest.String(),
	}
	if !latest.GreaterThan(current) {
		return result, nil
	}

	assetName, ok := assetNames[u.goos+"/"+u.goarch]
	if !ok {
		return nil, &UnsupportedPlatformError{OS: u.goos, Arch: u.goarch}
	}

	asset, err := findAsset(release, assetName)
	if err != nil {
		return nil, err
	}

	payload, err := u.client.DownloadAsset(ctx, ReleaseOwner, ReleaseRepo, asset.ID)
	if err != nil {
		return nil, err
	}

	if err := u.replacer.Replace(execPath, payload); err != nil {
		return nil, err
	}

	result.Updated = true
	return result, nil
}

func findAsset(release *github.Release, name string) (*github.Asset, error) {
	for i := range release.Assets {
		if release.Assets[i].Name == name {
			return &release.Assets[i], nil
		}
	}
	return nil, fmt.Errorf("release %s has no asset named %q", release.TagName, name)
}
