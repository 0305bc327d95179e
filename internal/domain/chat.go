package domain

// Role identifies the author of a conversation turn
type Role string

const (
	// RoleUser is a turn authored by the farmer
	RoleUser Role = "user"
	// RoleModel is a turn authored by the AI advisor
	RoleModel Role = "model"
)

// Citation is a web source attached to model output via search grounding
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Segment is a contiguous piece of text within a turn
type Segment struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
}

// ImageAttachment is an inline image carried by a user turn
type ImageAttachment struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Turn is one message within a conversation. A pending turn is a model turn
// whose content is still streaming; at most one turn in a conversation is
// pending, and it is always the last one.
type Turn struct {
	Role     Role             `json:"role"`
	Segments []Segment        `json:"segments"`
	Image    *ImageAttachment `json:"image,omitempty"`
	Pending  bool             `json:"pending"`
}

// Text returns the turn's accumulated text across all segments
func (t Turn) Text() string {
	if len(t.Segments) == 1 {
		return t.Segments[0].Text
	}
	var out string
	for _, s := range t.Segments {
		out += s.Text
	}
	return out
}

// Clone returns a deep copy of the turn
func (t Turn) Clone() Turn {
	c := t
	if t.Segments != nil {
		c.Segments = make([]Segment, len(t.Segments))
		for i, s := range t.Segments {
			c.Segments[i] = s
			if s.Citations != nil {
				c.Segments[i].Citations = append([]Citation(nil), s.Citations...)
			}
		}
	}
	if t.Image != nil {
		img := *t.Image
		img.Data = append([]byte(nil), t.Image.Data...)
		c.Image = &img
	}
	return c
}

// SubmitRequest is the request to send one user turn to the advisor
type SubmitRequest struct {
	Message   string           `json:"message"`
	Image     *ImageAttachment `json:"image,omitempty"`
	Language  string           `json:"language"`
	UseSearch bool             `json:"use_search"`
}

// SessionResponse describes a chat session to API clients. Turns is only
// populated on snapshot reads, not on creation.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	TurnCount int    `json:"turn_count"`
	InFlight  bool   `json:"in_flight"`
	Turns     []Turn `json:"turns,omitempty"`
}
