package schema

// ClubEntryTable represents the 'club.entries' table
type ClubEntryTable struct {
	Table     string
	ID        string
	BookSlug  string
	Reader    string
	Page      string
	Location  string
	Verdict   string
	CreatedAt string
}

// ClubEntry is the schema definition for club.entries
var ClubEntry = ClubEntryTable{
	Table:     "club.entries",
	ID:        "id",
	BookSlug:  "book_slug",
	Reader:    "reader",
	Page:      "page",
	Location:  "location",
	Verdict:   "verdict",
	CreatedAt: "created_at",
}
