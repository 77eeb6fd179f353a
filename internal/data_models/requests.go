package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type PostTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	Deadline    string   `json:"deadline"`
	Location    string   `json:"location"`
	Images      []string `json:"images,omitempty"`
}

type ApplyRequest struct {
	Message       string `json:"message"`
	ProposedPrice int    `json:"proposed_price"`
	Phone         string `json:"phone,omitempty"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

type ShareContactRequest struct {
	ReceiverID string `json:"receiver_id"`
}
