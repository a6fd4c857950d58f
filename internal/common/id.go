package common

import (
	"github.com/google/uuid"
)

// NewAnalysisID generates a unique analysis ID with the "analysis_" prefix
// Format: analysis_<uuid>
func NewAnalysisID() string {
	return "analysis_" + uuid.New().String()
}
