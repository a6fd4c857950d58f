// Package catalog holds the static signature tables that drive technology
// detection and README synthesis. Everything here is pure data: detection
// rules stay auditable and independently testable because no table entry
// carries behavior.
package catalog

import "github.com/ternarybob/gitscribe/internal/models"

// Well-known manifest and marker file names, matched case-insensitively
// against the repository listing.
const (
	NodeManifest       = "package.json"
	PythonRequirements = "requirements.txt"
	PythonProject      = "pyproject.toml"
	PythonSetup        = "setup.py"
	MavenBuild         = "pom.xml"
	GradleBuild        = "build.gradle"
	Dockerfile         = "dockerfile"
	DockerCompose      = "docker-compose.yml"
	PrismaSchema       = "schema.prisma"

	// WorkflowDirMarker is tested as a substring of lower-cased paths.
	WorkflowDirMarker = ".github/workflows"
)

// DependencyRule maps a package.json dependency key to a technology label.
// Rules with a non-empty Requires label only fire when the base library's
// label was already detected (base before meta-framework ordering).
type DependencyRule struct {
	Dependency string
	Label      string
	Category   models.TechCategory
	Requires   string
}

// NodeDependencyRules is evaluated in order against the merged
// dependencies+devDependencies map of package.json.
var NodeDependencyRules = []DependencyRule{
	// Base UI libraries first: meta-frameworks depend on their presence.
	{Dependency: "react", Label: "React", Category: models.CategoryFrameworks},
	{Dependency: "next", Label: "Next.js", Category: models.CategoryFrameworks, Requires: "React"},
	{Dependency: "gatsby", Label: "Gatsby", Category: models.CategoryFrameworks, Requires: "React"},
	{Dependency: "vue", Label: "Vue.js", Category: models.CategoryFrameworks},
	{Dependency: "nuxt", Label: "Nuxt.js", Category: models.CategoryFrameworks, Requires: "Vue.js"},
	{Dependency: "@angular/core", Label: "Angular", Category: models.CategoryFrameworks},
	{Dependency: "svelte", Label: "Svelte", Category: models.CategoryFrameworks},

	// Server frameworks.
	{Dependency: "express", Label: "Express", Category: models.CategoryFrameworks},
	{Dependency: "fastify", Label: "Fastify", Category: models.CategoryFrameworks},
	{Dependency: "@nestjs/core", Label: "NestJS", Category: models.CategoryFrameworks},

	// Tooling.
	{Dependency: "typescript", Label: "TypeScript", Category: models.CategoryTools},
	{Dependency: "vite", Label: "Vite", Category: models.CategoryTools},
	{Dependency: "webpack", Label: "Webpack", Category: models.CategoryTools},
	{Dependency: "tailwindcss", Label: "Tailwind CSS", Category: models.CategoryTools},
	{Dependency: "jest", Label: "Jest", Category: models.CategoryTools},
	{Dependency: "vitest", Label: "Vitest", Category: models.CategoryTools},
	{Dependency: "eslint", Label: "ESLint", Category: models.CategoryTools},
	{Dependency: "prettier", Label: "Prettier", Category: models.CategoryTools},
	{Dependency: "prisma", Label: "Prisma", Category: models.CategoryTools},

	// Databases signaled by client libraries.
	{Dependency: "mongoose", Label: "MongoDB", Category: models.CategoryDatabases},
	{Dependency: "mongodb", Label: "MongoDB", Category: models.CategoryDatabases},
	{Dependency: "pg", Label: "PostgreSQL", Category: models.CategoryDatabases},
	{Dependency: "mysql2", Label: "MySQL", Category: models.CategoryDatabases},
	{Dependency: "mysql", Label: "MySQL", Category: models.CategoryDatabases},
	{Dependency: "sqlite3", Label: "SQLite", Category: models.CategoryDatabases},
	{Dependency: "better-sqlite3", Label: "SQLite", Category: models.CategoryDatabases},
	{Dependency: "redis", Label: "Redis", Category: models.CategoryDatabases},
	{Dependency: "ioredis", Label: "Redis", Category: models.CategoryDatabases},
}

// KeywordRule maps a literal, case-sensitive substring of a flat-text
// manifest (requirements.txt) to a technology label.
type KeywordRule struct {
	Keyword  string
	Label    string
	Category models.TechCategory
}

// PythonKeywordRules is evaluated against the raw requirements.txt content.
var PythonKeywordRules = []KeywordRule{
	{Keyword: "django", Label: "Django", Category: models.CategoryFrameworks},
	{Keyword: "Django", Label: "Django", Category: models.CategoryFrameworks},
	{Keyword: "flask", Label: "Flask", Category: models.CategoryFrameworks},
	{Keyword: "Flask", Label: "Flask", Category: models.CategoryFrameworks},
	{Keyword: "fastapi", Label: "FastAPI", Category: models.CategoryFrameworks},
	{Keyword: "numpy", Label: "NumPy", Category: models.CategoryTools},
	{Keyword: "pandas", Label: "pandas", Category: models.CategoryTools},
	{Keyword: "torch", Label: "PyTorch", Category: models.CategoryTools},
	{Keyword: "tensorflow", Label: "TensorFlow", Category: models.CategoryTools},
	{Keyword: "pytest", Label: "pytest", Category: models.CategoryTools},
	{Keyword: "celery", Label: "Celery", Category: models.CategoryTools},
	{Keyword: "sqlalchemy", Label: "SQLAlchemy", Category: models.CategoryTools},
	{Keyword: "SQLAlchemy", Label: "SQLAlchemy", Category: models.CategoryTools},
	{Keyword: "psycopg2", Label: "PostgreSQL", Category: models.CategoryDatabases},
	{Keyword: "pymongo", Label: "MongoDB", Category: models.CategoryDatabases},
	{Keyword: "redis", Label: "Redis", Category: models.CategoryDatabases},
}

// MarkerRule fires on file presence alone, no content fetch. Name matches
// the lower-cased file name exactly; PathPrefix tests literal substring
// containment within the lower-cased path.
type MarkerRule struct {
	Name       string
	PathPrefix string
	Label      string
	Category   models.TechCategory
}

// MarkerRules covers build, CI, and containerization signals.
var MarkerRules = []MarkerRule{
	{Name: Dockerfile, Label: "Docker", Category: models.CategoryDeployment},
	{Name: DockerCompose, Label: "Docker Compose", Category: models.CategoryDeployment},
	{Name: "docker-compose.yaml", Label: "Docker Compose", Category: models.CategoryDeployment},
	{PathPrefix: WorkflowDirMarker, Label: "GitHub Actions", Category: models.CategoryDeployment},
	{Name: ".gitlab-ci.yml", Label: "GitLab CI", Category: models.CategoryDeployment},
	{Name: "jenkinsfile", Label: "Jenkins", Category: models.CategoryDeployment},
	{Name: "vercel.json", Label: "Vercel", Category: models.CategoryDeployment},
	{Name: "netlify.toml", Label: "Netlify", Category: models.CategoryDeployment},
	{Name: MavenBuild, Label: "Maven", Category: models.CategoryTools},
	{Name: GradleBuild, Label: "Gradle", Category: models.CategoryTools},
	{Name: "build.gradle.kts", Label: "Gradle", Category: models.CategoryTools},
	{Name: "makefile", Label: "Make", Category: models.CategoryTools},
	{Name: "cargo.toml", Label: "Cargo", Category: models.CategoryTools},
	{Name: "go.mod", Label: "Go Modules", Category: models.CategoryTools},
}

// DatabaseFileRules contribute a database label from file presence,
// independent of any manifest: any .sql script or a named schema file.
var DatabaseFileRules = []MarkerRule{
	{Name: PrismaSchema, Label: "Prisma", Category: models.CategoryDatabases},
}

// SQLExtension marks plain SQL scripts.
const SQLExtension = ".sql"

// SQLLabel is the database label contributed by SQL script presence.
const SQLLabel = "SQL"

// FrameworkBadges maps a framework label to its shields.io badge markdown.
// Frameworks without an entry are silently skipped.
var FrameworkBadges = map[string]string{
	"React":   "![React](https://img.shields.io/badge/React-20232A?style=for-the-badge&logo=react&logoColor=61DAFB)",
	"Next.js": "![Next.js](https://img.shields.io/badge/Next.js-000000?style=for-the-badge&logo=nextdotjs&logoColor=white)",
	"Vue.js":  "![Vue.js](https://img.shields.io/badge/Vue.js-35495E?style=for-the-badge&logo=vuedotjs&logoColor=4FC08D)",
	"Nuxt.js": "![Nuxt.js](https://img.shields.io/badge/Nuxt.js-00DC82?style=for-the-badge&logo=nuxtdotjs&logoColor=white)",
	"Angular": "![Angular](https://img.shields.io/badge/Angular-DD0031?style=for-the-badge&logo=angular&logoColor=white)",
	"Svelte":  "![Svelte](https://img.shields.io/badge/Svelte-FF3E00?style=for-the-badge&logo=svelte&logoColor=white)",
	"Express": "![Express](https://img.shields.io/badge/Express-000000?style=for-the-badge&logo=express&logoColor=white)",
	"NestJS":  "![NestJS](https://img.shields.io/badge/NestJS-E0234E?style=for-the-badge&logo=nestjs&logoColor=white)",
	"Django":  "![Django](https://img.shields.io/badge/Django-092E20?style=for-the-badge&logo=django&logoColor=white)",
	"Flask":   "![Flask](https://img.shields.io/badge/Flask-000000?style=for-the-badge&logo=flask&logoColor=white)",
	"FastAPI": "![FastAPI](https://img.shields.io/badge/FastAPI-009688?style=for-the-badge&logo=fastapi&logoColor=white)",
}

// ProjectTypeRule classifies a repository from its detected frameworks.
// All named frameworks must be present for the rule to fire.
type ProjectTypeRule struct {
	Frameworks []string
	Label      string
}

// ProjectTypeRules is ordered most-specific first; the first matching rule
// wins.
var ProjectTypeRules = []ProjectTypeRule{
	{Frameworks: []string{"React", "Next.js"}, Label: "Next.js application"},
	{Frameworks: []string{"Vue.js", "Nuxt.js"}, Label: "Nuxt application"},
	{Frameworks: []string{"React"}, Label: "React application"},
	{Frameworks: []string{"Vue.js"}, Label: "Vue application"},
	{Frameworks: []string{"Angular"}, Label: "Angular application"},
	{Frameworks: []string{"Svelte"}, Label: "Svelte application"},
	{Frameworks: []string{"NestJS"}, Label: "NestJS service"},
	{Frameworks: []string{"Express"}, Label: "Express server"},
	{Frameworks: []string{"Django"}, Label: "Django web application"},
	{Frameworks: []string{"Flask"}, Label: "Flask web application"},
	{Frameworks: []string{"FastAPI"}, Label: "FastAPI service"},
}

// DefaultProjectType is used when no framework rule matches.
const DefaultProjectType = "software project"

// API documentation section constants: FastAPI conventionally serves on
// 8000, everything else defaults to 3000.
const (
	APIPortFastAPI = 8000
	APIPortDefault = 3000
)

// APIFrameworkMarkers are substrings of detected framework labels that make
// a repository an API project.
var APIFrameworkMarkers = []string{"Express", "Fastify", "NestJS", "Django", "Flask", "FastAPI"}

// APIPathMarkers are substrings of file names/paths that make a repository
// an API project.
var APIPathMarkers = []string{"api", "routes", "controllers", "endpoints"}

// LockfileRule maps a recognized lockfile name to its package manager.
type LockfileRule struct {
	Name    string
	Manager string
}

// LockfileRules is evaluated in order; the first lockfile present in the
// listing decides the package manager.
var LockfileRules = []LockfileRule{
	{Name: "yarn.lock", Manager: "yarn"},
	{Name: "pnpm-lock.yaml", Manager: "pnpm"},
	{Name: "bun.lockb", Manager: "bun"},
}

// DefaultPackageManager is used when no recognized lockfile is present.
const DefaultPackageManager = "npm"
