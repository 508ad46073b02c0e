package github

import (
	"context"
)

// GitHubClient provides an abstraction over the GitHub API operations
// the self-update flow needs.
type GitHubClient interface {
	// GetLatestRelease returns the latest published release of a repository
	GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error)

	// DownloadAsset fetches a release asset's binary content
	DownloadAsset(ctx context.Context, owner, repo string, assetID int64) ([]byte, error)
}

// Release represents a GitHub release
type Release struct {
	TagName string
	Name    string
	Assets  []Asset
}

// Asset represents a file attached to a release
type Asset struct {
	ID                 int64
	Name               string
	BrowserDownloadURL string
	Size               int
}
