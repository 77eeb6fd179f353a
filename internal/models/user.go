package model

// User is the session record. It is never written to the database; its only
// persistent form is the JSON snapshot held by the session store.
type User struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Avatar         string   `json:"avatar,omitempty"`
	Rating         float64  `json:"rating"`
	CompletedTasks int      `json:"completed_tasks"`
	JoinedDate     string   `json:"joined_date"`
	Phone          string   `json:"phone,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}
