package constants

// AllCategories is the filter sentinel; it is never a valid category for posting.
const AllCategories = "All Categories"

// Categories is the fixed list shared by the browse filter and the posting
// validator. The sentinel comes first, matching the order consumers display it in.
var Categories = []string{
	AllCategories,
	"Gardening",
	"Moving",
	"Pet Care",
	"Cleaning",
	"Shopping",
	"Technology",
	"Handyman",
	"Tutoring",
	"Cooking",
	"Other",
}

// IsPostableCategory reports whether c is a real category (not the sentinel).
func IsPostableCategory(c string) bool {
	for _, cat := range Categories[1:] {
		if cat == c {
			return true
		}
	}
	return false
}
