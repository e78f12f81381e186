package schema

// ClubDeadlineTable represents the 'club.deadlines' table
type ClubDeadlineTable struct {
	Table         string
	ID            string
	BookSlug      string
	StartsOn      string
	EndsOn        string
	StartPage     string
	StartLocation string
	EndPage       string
	EndLocation   string
}

// ClubDeadline is the schema definition for club.deadlines
var ClubDeadline = ClubDeadlineTable{
	Table:         "club.deadlines",
	ID:            "id",
	BookSlug:      "book_slug",
	StartsOn:      "starts_on",
	EndsOn:        "ends_on",
	StartPage:     "start_page",
	StartLocation: "start_location",
	EndPage:       "end_page",
	EndLocation:   "end_location",
}
