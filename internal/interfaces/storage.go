package interfaces

import (
	"time"

	"github.com/ternarybob/gitscribe/internal/models"
)

// AnalysisStorage persists generation results.
type AnalysisStorage interface {
	SaveAnalysis(analysis *models.Analysis) error
	GetAnalysis(id string) (*models.Analysis, error)
	ListAnalyses(offset, limit int) ([]*models.Analysis, error)
	CountAnalyses() (int, error)
	DeleteAnalysis(id string) error

	// DeleteOlderThan removes analyses created before the cutoff and
	// returns the number deleted.
	DeleteOlderThan(cutoff time.Time) (int, error)
}

// StorageManager owns the database connection and the typed storages.
type StorageManager interface {
	AnalysisStorage() AnalysisStorage
	Close() error
}
