package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client implements GitHubClient using the real GitHub API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

var (
	ErrGitHubTokenNotFound = fmt.Errorf("GITHUB_TOKEN or GH_TOKEN environment variable not found")
)

// NewClientFromEnv creates a GitHub client using the token from
// environment variables, falling back to unauthenticated access when no
// token is set. Release downloads from public repositories work either
// way; the token only raises the rate limit.
func NewClientFromEnv() *Client {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return NewClientWithoutAuth()
	}
	return NewClient(token)
}

// NewClientWithoutAuth creates a GitHub client without authentication (for public operations)
func NewClientWithoutAuth() *Client {
	return &Client{
		client: github.NewClient(nil),
	}
}

func (c *Client) GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest release: %w", err)
	}
	return convertRelease(release), nil
}

func (c *Client) DownloadAsset(ctx context.Context, owner, repo string, assetID int64) ([]byte, error) {
	rc, _, err := c.client.Repositories.DownloadReleaseAsset(ctx, owner, repo, assetID, http.DefaultClient)
	if err != nil {
		return nil, fmt.Errorf("failed to download release asset: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read release asset: %w", err)
	}
	return data, nil
}

func convertRelease(r *github.RepositoryRelease) *Release {
	release := &Release{
		TagName: r.GetTagName(),
		Name:    r.GetName(),
	}
	for _, a := range r.Assets {
		release.Assets = append(release.Assets, Asset{
			ID:                 a.GetID(),
			Name:               a.GetName(),
			BrowserDownloadURL: a.GetBrowserDownloadURL(),
			Size:               a.GetSize(),
		})
	}
	return release
}
