package github

import (
	"context"
	"fmt"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	LatestRelease *Release
	AssetData     map[int64][]byte

	// Error injection
	GetLatestReleaseError error
	DownloadAssetError    error

	// Call tracking
	DownloadedAssetIDs []int64
}

// NewMockClient creates a new mock GitHub client
func NewMockClient() *MockClient {
	return &MockClient{
		AssetData: make(map[int64][]byte),
	}
}

func (m *MockClient) GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	if m.GetLatestReleaseError != nil {
		return nil, m.GetLatestReleaseError
	}
	if m.LatestRelease == nil {
		return nil, fmt.Errorf("no release configured for %s/%s", owner, repo)
	}
	return m.LatestRelease, nil
}

func (m *MockClient) DownloadAsset(ctx context.Context, owner, repo string, assetID int64) ([]byte, error) {
	if m.DownloadAssetError != nil {
		return nil, m.DownloadAssetError
	}
	m.DownloadedAssetIDs = append(m.DownloadedAssetIDs, assetID)

	data, ok := m.AssetData[assetID]
	if !ok {
		return nil, fmt.Errorf("no asset data configured for asset %d", assetID)
	}
	return data, nil
}
