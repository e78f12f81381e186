package schema

// ClubSnapshotTable represents the 'club.snapshots' table
type ClubSnapshotTable struct {
	Table       string
	BookSlug    string
	Reader      string
	LastEntryID string
	Percent     string
	UpdatedAt   string
	UpdatedOn   string
}

// ClubSnapshot is the schema definition for club.snapshots
var ClubSnapshot = ClubSnapshotTable{
	Table:       "club.snapshots",
	BookSlug:    "book_slug",
	Reader:      "reader",
	LastEntryID: "last_entry_id",
	Percent:     "percent",
	UpdatedAt:   "updated_at",
	UpdatedOn:   "updated_on",
}
