package models

import "time"

// FileKind distinguishes files from directories in a repository listing.
type FileKind string

const (
	FileKindFile      FileKind = "file"
	FileKindDirectory FileKind = "dir"
)

// License identifies a repository license by display name and SPDX identifier.
type License struct {
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

// RepoMetadata is the repository-level metadata fetched from the hosting API.
// It is read-only for the duration of a generation pass.
type RepoMetadata struct {
	FullName        string    `json:"full_name"` // owner/repo
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	CloneURL        string    `json:"clone_url"`
	DefaultBranch   string    `json:"default_branch"`
	PrimaryLanguage string    `json:"primary_language"`
	License         *License  `json:"license,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Stars           int       `json:"stars"`
	Forks           int       `json:"forks"`
	OpenIssues      int       `json:"open_issues"`
	SizeKB          int       `json:"size_kb"` // Repository size in kilobytes
}

// Owner returns the segment of the full name before the first slash.
func (m *RepoMetadata) Owner() string {
	for i := 0; i < len(m.FullName); i++ {
		if m.FullName[i] == '/' {
			return m.FullName[:i]
		}
	}
	return m.FullName
}

// FileEntry is one entry of a flat, root-relative repository listing.
// The default listing is non-recursive: immediate children of the root only.
type FileEntry struct {
	Name string   `json:"name"`
	Path string   `json:"path"` // Slash-separated, repository-root-relative
	Kind FileKind `json:"kind"`
	Size int      `json:"size,omitempty"`
}

// IsDir reports whether the entry is a directory.
func (e FileEntry) IsDir() bool {
	return e.Kind == FileKindDirectory
}
