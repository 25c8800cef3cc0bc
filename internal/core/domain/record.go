package domain

// Record carries the server-assigned identifier shared by every entity.
// Two generations of the backend disagree on the field name ("id" vs the
// Mongo-style "_id"), so both are accepted on the wire and collapsed into
// the canonical ID immediately on ingest. Code past the normalizer only
// ever sees ID.
type Record struct {
	ID       string `json:"id,omitempty"`
	LegacyID string `json:"_id,omitempty"`
}

// Normalize collapses the legacy identifier into ID. Called by the payload
// package on every decoded entity before it reaches a store.
func (r *Record) Normalize() {
	if r.ID == "" {
		r.ID = r.LegacyID
	}
	r.LegacyID = ""
}

// Identifier returns the canonical identifier.
func (r *Record) Identifier() string {
	return r.ID
}
