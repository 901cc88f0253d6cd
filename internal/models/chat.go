package models

// Part is a single text fragment of a Turn. Text is a pointer so a part
// that arrives without a text field can be told apart from one whose text
// is explicitly empty.
type Part struct {
	Text *string `json:"text,omitempty"`
}

// Turn represents a single message in a conversation history. Role is a
// pointer for the same present-versus-empty distinction as Part.Text: a
// turn without a role field is invalid, while an empty role string is
// accepted and forwarded untouched (it simply never matches "user").
type Turn struct {
	Role  *string `json:"role,omitempty"` // "user" or "model"
	Parts []Part  `json:"parts"`
}

// AskRequest is the payload sent to the ask endpoint. Contents is the
// full conversation history, oldest turn first.
type AskRequest struct {
	Contents []Turn `json:"contents"`
}

// AskResponse is the advisor's reply.
type AskResponse struct {
	Answer string `json:"answer"`
}
