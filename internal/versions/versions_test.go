package versions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameListing = `[
	{"version": "1.21.5-rc1", "stable": false},
	{"version": "1.21.4", "stable": true},
	{"version": "1.21.3", "stable": true}
]`

const loaderListing = `[
	{"version": "0.17.0-beta.1", "stable": false},
	{"version": "0.16.9", "stable": true}
]`

const fabricAPIMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>net.fabricmc.fabric-api</groupId>
  <artifactId>fabric-api</artifactId>
  <versioning>
    <versions>
      <version>0.110.0+1.21.3</version>
      <version>0.110.5+1.21.4</version>
      <version>0.111.0+1.21.4</version>
      <version>0.112.0+1.21.5</version>
    </versions>
  </versioning>
</metadata>`

const neoforgeMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>net.neoforged</groupId>
  <artifactId>neoforge</artifactId>
  <versioning>
    <versions>
      <version>21.3.50</version>
      <version>21.4.100</version>
      <version>21.4.156</version>
      <version>21.5.1-beta</version>
    </versions>
  </versioning>
</metadata>`

func TestLatestStable(t *testing.T) {
	mc, err := latestStable([]byte(gameListing))
	require.NoError(t, err)
	assert.Equal(t, "1.21.4", mc)

	loader, err := latestStable([]byte(loaderListing))
	require.NoError(t, err)
	assert.Equal(t, "0.16.9", loader)
}

func TestLatestStable_NoneStable(t *testing.T) {
	_, err := latestStable([]byte(`[{"version": "1.22-pre1", "stable": false}]`))
	assert.ErrorContains(t, err, "no stable version")
}

func TestLatestStable_BadJSON(t *testing.T) {
	_, err := latestStable([]byte(`<html>not json</html>`))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestFabricAPIFor(t *testing.T) {
	v, err := fabricAPIFor([]byte(fabricAPIMetadata), "1.21.4")
	require.NoError(t, err)
	assert.Equal(t, "0.111.0+1.21.4", v, "last matching build wins")
}

func TestFabricAPIFor_NoMatch(t *testing.T) {
	_, err := fabricAPIFor([]byte(fabricAPIMetadata), "1.20.1")
	assert.ErrorContains(t, err, "no fabric api build for minecraft 1.20.1")
}

func TestNeoForgeFor(t *testing.T) {
	v, err := neoForgeFor([]byte(neoforgeMetadata), "1.21.4")
	require.NoError(t, err)
	assert.Equal(t, "21.4.156", v)
}

func TestNeoForgeFor_NoMatch(t *testing.T) {
	_, err := neoForgeFor([]byte(neoforgeMetadata), "1.19.2")
	assert.ErrorContains(t, err, "no neoforge build")
}

func TestNeoForgePrefix(t *testing.T) {
	assert.Equal(t, "21.4.", neoForgePrefix("1.21.4"))
	assert.Equal(t, "21.0.", neoForgePrefix("1.21"))
}

func TestResolve_FallsBackPerField(t *testing.T) {
	// Every endpoint is unreachable, so every field keeps its default
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	r := NewResolver(&http.Client{Transport: rewriteTransport{target: server.URL}})
	v, warnings := r.Resolve(context.Background())

	assert.Equal(t, "1.21.4", v.Minecraft)
	assert.Equal(t, "0.16.9", v.FabricLoader)
	assert.Len(t, warnings, 4)
}

func TestResolve_Discovers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/versions/game":
			w.Write([]byte(gameListing))
		case "/v2/versions/loader":
			w.Write([]byte(loaderListing))
		case "/net/fabricmc/fabric-api/fabric-api/maven-metadata.xml":
			w.Write([]byte(fabricAPIMetadata))
		case "/releases/net/neoforged/neoforge/maven-metadata.xml":
			w.Write([]byte(neoforgeMetadata))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	r := NewResolver(&http.Client{Transport: rewriteTransport{target: server.URL}})
	v, warnings := r.Resolve(context.Background())

	assert.Empty(t, warnings)
	assert.Equal(t, "1.21.4", v.Minecraft)
	assert.Equal(t, "0.16.9", v.FabricLoader)
	assert.Equal(t, "0.111.0+1.21.4", v.FabricAPI)
	assert.Equal(t, "21.4.156", v.NeoForge)
}

// rewriteTransport redirects every request to the test server while
// keeping the request path.
type rewriteTransport struct {
	target string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rewritten, err := http.NewRequestWithContext(req.Context(), req.Method, t.target+req.URL.Path, req.Body)
	if err != nil {
		return nil, err
	}
	return http.DefaultTransport.RoundTrip(rewritten)
}
