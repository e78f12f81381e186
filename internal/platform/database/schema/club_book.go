package schema

// ClubBookTable represents the 'club.books' table
type ClubBookTable struct {
	Table     string
	Slug      string
	Title     string
	Pages     string
	Locations string
	CreatedAt string
}

// ClubBook is the schema definition for club.books
var ClubBook = ClubBookTable{
	Table:     "club.books",
	Slug:      "slug",
	Title:     "title",
	Pages:     "pages",
	Locations: "locations",
	CreatedAt: "created_at",
}
