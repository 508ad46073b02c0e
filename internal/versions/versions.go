// Package versions discovers the latest platform and loader versions
// from the Fabric Meta API and the Fabric and NeoForge Maven
// repositories. Every lookup falls back to the pinned defaults on
// failure so project generation never blocks on the network.
package versions

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhughes-dev/mcmod/internal/models"
)

// Discovery endpoints.
const (
	fabricGameURL   = "https://meta.fabricmc.net/v2/versions/game"
	fabricLoaderURL = "https://meta.fabricmc.net/v2/versions/loader"
	fabricAPIURL    = "https://maven.fabricmc.net/net/fabricmc/fabric-api/fabric-api/maven-metadata.xml"
	neoforgeURL     = "https://maven.neoforged.net/releases/net/neoforged/neoforge/maven-metadata.xml"
)

// Resolver fetches latest versions over HTTP
type Resolver struct {
	http *http.Client
}

// NewResolver creates a resolver using the given HTTP client, or
// http.DefaultClient when nil.
func NewResolver(client *http.Client) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &Resolver{http: client}
}

// Resolve returns the latest discovered versions. Each field falls back
// to its pinned default independently; a warning is returned per field
// that fell back.
func (r *Resolver) Resolve(ctx context.Context) (models.Versions, []string) {
	v := models.DefaultVersions()
	var warnings []string

	warn := func(field string, err error) {
		warnings = append(warnings, fmt.Sprintf("could not discover latest %s version, using %s default: %v", field, field, err))
	}

	if mc, err := r.fetchLatestStable(ctx, fabricGameURL); err != nil {
		warn("minecraft", err)
	} else {
		v.Minecraft = mc
	}

	if loader, err := r.fetchLatestStable(ctx, fabricLoaderURL); err != nil {
		warn("fabric loader", err)
	} else {
		v.FabricLoader = loader
	}

	if api, err := r.fetchFabricAPI(ctx, v.Minecraft); err != nil {
		warn("fabric api", err)
	} else {
		v.FabricAPI = api
	}

	if nf, err := r.fetchNeoForge(ctx, v.Minecraft); err != nil {
		warn("neoforge", err)
	} else {
		v.NeoForge = nf
	}

	return v, warnings
}

// metaEntry is one version record in a Fabric Meta listing
type metaEntry struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

func (r *Resolver) fetchLatestStable(ctx context.Context, url string) (string, error) {
	body, err := r.get(ctx, url)
	if err != nil {
		return "", err
	}
	return latestStable(body)
}

// latestStable returns the first stable entry of a Fabric Meta listing.
// The listings are ordered newest first.
func latestStable(body []byte) (string, error) {
	var entries []metaEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", fmt.Errorf("failed to parse version listing: %w", err)
	}

	for _, e := range entries {
		if e.Stable {
			return e.Version, nil
		}
	}
	return "", fmt.Errorf("no stable version in listing")
}

// mavenMetadata is the subset of maven-metadata.xml we read
type mavenMetadata struct {
	Versions []string `xml:"versioning>versions>version"`
}

func (r *Resolver) fetchFabricAPI(ctx context.Context, minecraft string) (string, error) {
	body, err := r.get(ctx, fabricAPIURL)
	if err != nil {
		return "", err
	}
	return fabricAPIFor(body, minecraft)
}

// fabricAPIFor picks the newest Fabric API build for a Minecraft
// version. Builds carry a "+<minecraft>" suffix; the metadata lists
// versions oldest first, so the last match wins.
func fabricAPIFor(metadata []byte, minecraft string) (string, error) {
	var meta mavenMetadata
	if err := xml.Unmarshal(metadata, &meta); err != nil {
		return "", fmt.Errorf("failed to parse maven metadata: %w", err)
	}

	suffix := "+" + minecraft
	found := ""
	for _, v := range meta.Versions {
		if strings.HasSuffix(v, suffix) {
			found = v
		}
	}
	if found == "" {
		return "", fmt.Errorf("no fabric api build for minecraft %s", minecraft)
	}
	return found, nil
}

func (r *Resolver) fetchNeoForge(ctx context.Context, minecraft string) (string, error) {
	body, err := r.get(ctx, neoforgeURL)
	if err != nil {
		return "", err
	}
	return neoForgeFor(body, minecraft)
}

// neoForgeFor picks the newest NeoForge build for a Minecraft version.
// NeoForge drops Minecraft's leading "1." from its version scheme, so
// Minecraft 1.21.4 maps to builds prefixed "21.4.".
func neoForgeFor(metadata []byte, minecraft string) (string, error) {
	var meta mavenMetadata
	if err := xml.Unmarshal(metadata, &meta); err != nil {
		return "", fmt.Errorf("failed to parse maven metadata: %w", err)
	}

	prefix := neoForgePrefix(minecraft)
	found := ""
	for _, v := range meta.Versions {
		if strings.HasPrefix(v, prefix) {
			found = v
		}
	}
	if found == "" {
		return "", fmt.Errorf("no neoforge build for minecraft %s", minecraft)
	}
	return found, nil
}

// neoForgePrefix maps a Minecraft version to its NeoForge version
// prefix: "1.21.4" -> "21.4.", "1.21" -> "21.0.".
func neoForgePrefix(minecraft string) string {
	parts := strings.Split(strings.TrimPrefix(minecraft, "1."), ".")
	if len(parts) == 1 {
		return parts[0] + ".0."
	}
	return parts[0] + "." + parts[1] + "."
}

func (r *Resolver) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
