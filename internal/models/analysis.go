package models

import "time"

// Analysis is the stored result of one generation pass: the repository
// metadata and listing that fed detection, the detected profile, and the
// final resolved README document.
type Analysis struct {
	ID       string       `json:"id" badgerhold:"key"` // analysis_{uuid}
	Owner    string       `json:"owner"`
	Repo     string       `json:"repo"`
	Metadata *RepoMetadata `json:"metadata"`
	Listing  []FileEntry  `json:"listing"`
	Profile  *TechProfile `json:"profile"`
	Markdown string       `json:"markdown"`

	CreatedAt time.Time `json:"created_at"`
}
