package domain

// FailedArchive records a page that could not be archived.
type FailedArchive struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// CleanupResult summarizes a duplicate cleanup run.
type CleanupResult struct {
	DeletedIDs []string        `json:"deletedIds"`
	Failed     []FailedArchive `json:"failedIds"`
}

// DeletedCount is the number of archived duplicates.
func (r CleanupResult) DeletedCount() int { return len(r.DeletedIDs) }

// FailedCount is the number of duplicates that could not be archived.
func (r CleanupResult) FailedCount() int { return len(r.Failed) }

// SeedResult describes the sample invoice created by a seed run.
type SeedResult struct {
	InvoiceID     string   `json:"id"`
	InvoiceNumber string   `json:"number"`
	ItemIDs       []string `json:"-"`
}

// ItemCount is the number of items related to the seeded invoice.
func (r SeedResult) ItemCount() int { return len(r.ItemIDs) }
