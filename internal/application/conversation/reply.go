package conversation

import "fmt"

// Segment is one ordered unit of an outbound reply: either text or an
// image reference, never both. The channel renderer decides how segments
// map onto the provider's message format.
type Segment struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Reply is the ordered list of segments produced for one inbound message.
type Reply struct {
	Segments []Segment `json:"segments"`
}

// NewReply creates an empty reply.
func NewReply() *Reply {
	return &Reply{}
}

// Textf appends a formatted text segment and returns the reply for
// chaining.
func (r *Reply) Textf(format string, args ...interface{}) *Reply {
	r.Segments = append(r.Segments, Segment{Text: fmt.Sprintf(format, args...)})
	return r
}

// Image appends an image-reference segment.
func (r *Reply) Image(url string) *Reply {
	if url != "" {
		r.Segments = append(r.Segments, Segment{ImageURL: url})
	}
	return r
}
