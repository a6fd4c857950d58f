package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/models"
)

func createTestDetector() *Detector {
	return New(arbor.NewLogger())
}

// staticFetcher serves manifest content from a map, empty string otherwise.
func staticFetcher(contents map[string]string) ManifestFetcher {
	return func(ctx context.Context, path string) string {
		return contents[path]
	}
}

func emptyFetcher(ctx context.Context, path string) string {
	return ""
}

func fileEntry(name string) models.FileEntry {
	return models.FileEntry{Name: name, Path: name, Kind: models.FileKindFile}
}

func TestDetect_NoRecognizedFiles(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		fileEntry("main.go"),
		fileEntry("README.md"),
	}
	languages := map[string]int{"Go": 1000}

	profile := detector.Detect(context.Background(), listing, languages, emptyFetcher)

	assert.Empty(t, profile.Frameworks)
	assert.Empty(t, profile.Tools)
	assert.Empty(t, profile.Databases)
	assert.Empty(t, profile.Deployment)
	// Go Modules fires only on go.mod presence; languages pass through unmodified.
	assert.Equal(t, languages, profile.Languages)
}

func TestDetect_EmptyListing(t *testing.T) {
	detector := createTestDetector()

	profile := detector.Detect(context.Background(), nil, nil, emptyFetcher)

	require.NotNil(t, profile)
	assert.True(t, profile.IsEmpty())
	assert.NotNil(t, profile.Languages)
}

func TestDetect_ReactAndNext(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{fileEntry("package.json")}
	fetcher := staticFetcher(map[string]string{
		"package.json": `{"dependencies":{"react":"^18.0.0","next":"^14.0.0"}}`,
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.Contains(t, profile.Frameworks, "React")
	assert.Contains(t, profile.Frameworks, "Next.js")
}

func TestDetect_NextWithoutReact(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{fileEntry("package.json")}
	fetcher := staticFetcher(map[string]string{
		"package.json": `{"dependencies":{"next":"^14.0.0"}}`,
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	// The meta-framework rule requires its base library.
	assert.NotContains(t, profile.Frameworks, "Next.js")
}

func TestDetect_DevDependenciesMerged(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{fileEntry("package.json")}
	fetcher := staticFetcher(map[string]string{
		"package.json": `{"dependencies":{"express":"^4.18.0"},"devDependencies":{"typescript":"^5.0.0","jest":"^29.0.0"}}`,
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.Contains(t, profile.Frameworks, "Express")
	assert.Contains(t, profile.Tools, "TypeScript")
	assert.Contains(t, profile.Tools, "Jest")
}

func TestDetect_MalformedManifest(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{fileEntry("package.json")}
	fetcher := staticFetcher(map[string]string{
		"package.json": `{not valid json`,
	})

	// Parse failures are logged, never raised.
	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.Empty(t, profile.Frameworks)
	assert.Empty(t, profile.Tools)
}

func TestDetect_FetchFailureIsZeroSignal(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		fileEntry("package.json"),
		fileEntry("requirements.txt"),
	}

	profile := detector.Detect(context.Background(), listing, nil, emptyFetcher)

	assert.True(t, profile.IsEmpty())
}

func TestDetect_PythonRequirements(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{fileEntry("requirements.txt")}
	fetcher := staticFetcher(map[string]string{
		"requirements.txt": "Django==4.2\npsycopg2-binary==2.9\npytest==8.0\n",
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.Contains(t, profile.Frameworks, "Django")
	assert.Contains(t, profile.Databases, "PostgreSQL")
	assert.Contains(t, profile.Tools, "pytest")
}

func TestDetect_PythonKeywordsCaseSensitive(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{fileEntry("requirements.txt")}
	fetcher := staticFetcher(map[string]string{
		// "FLASK" matches neither "flask" nor "Flask" keyword.
		"requirements.txt": "FLASK==3.0\n",
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.NotContains(t, profile.Frameworks, "Flask")
}

func TestDetect_PresenceMarkers(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		fileEntry("Dockerfile"),
		fileEntry("Makefile"),
		{Name: "ci.yml", Path: ".github/workflows/ci.yml", Kind: models.FileKindFile},
	}

	profile := detector.Detect(context.Background(), listing, nil, emptyFetcher)

	assert.Contains(t, profile.Deployment, "Docker")
	assert.Contains(t, profile.Deployment, "GitHub Actions")
	assert.Contains(t, profile.Tools, "Make")
}

func TestDetect_DatabaseFiles(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		fileEntry("schema.sql"),
		fileEntry("schema.prisma"),
	}

	profile := detector.Detect(context.Background(), listing, nil, emptyFetcher)

	assert.Contains(t, profile.Databases, "SQL")
	assert.Contains(t, profile.Databases, "Prisma")
}

func TestDetect_MultipleEcosystemsCoexist(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		fileEntry("package.json"),
		fileEntry("requirements.txt"),
	}
	fetcher := staticFetcher(map[string]string{
		"package.json":     `{"dependencies":{"react":"^18.0.0"}}`,
		"requirements.txt": "fastapi==0.110\n",
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.Contains(t, profile.Frameworks, "React")
	assert.Contains(t, profile.Frameworks, "FastAPI")
}

func TestDetect_NoDuplicateLabels(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		fileEntry("package.json"),
		fileEntry("users.sql"),
		fileEntry("orders.sql"),
	}
	fetcher := staticFetcher(map[string]string{
		// mongoose and mongodb both map to the MongoDB label.
		"package.json": `{"dependencies":{"mongoose":"^8.0.0","mongodb":"^6.0.0"}}`,
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	seen := map[string]int{}
	for _, label := range profile.Databases {
		seen[label]++
	}
	for label, count := range seen {
		assert.Equal(t, 1, count, "label %q appears %d times", label, count)
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	input := []string{"a", "b", "a", "c", "b"}

	once := dedupe(append([]string(nil), input...))
	twice := dedupe(append([]string(nil), once...))

	assert.Equal(t, []string{"a", "b", "c"}, once)
	assert.Equal(t, once, twice)
}

func TestDetect_CaseInsensitiveFileNames(t *testing.T) {
	detector := createTestDetector()
	listing := []models.FileEntry{
		{Name: "DOCKERFILE", Path: "DOCKERFILE", Kind: models.FileKindFile},
		{Name: "Package.JSON", Path: "Package.JSON", Kind: models.FileKindFile},
	}
	fetcher := staticFetcher(map[string]string{
		"Package.JSON": `{"dependencies":{"vue":"^3.0.0"}}`,
	})

	profile := detector.Detect(context.Background(), listing, nil, fetcher)

	assert.Contains(t, profile.Deployment, "Docker")
	assert.Contains(t, profile.Frameworks, "Vue.js")
}
