package httpapi

import (
	"encoding/xml"

	"github.com/cjephuneh/tractor-whatsapp/internal/application/conversation"
)

// DefaultMarker is the decorative prefix applied to every text segment.
const DefaultMarker = "🚜"

// TwiMLRenderer turns a reply's ordered segments into the provider's
// TwiML response document. Each segment becomes its own Message element
// so ordering survives the transport.
type TwiMLRenderer struct {
	marker string
}

// NewTwiMLRenderer creates a renderer; an empty marker selects
// DefaultMarker.
func NewTwiMLRenderer(marker string) *TwiMLRenderer {
	if marker == "" {
		marker = DefaultMarker
	}
	return &TwiMLRenderer{marker: marker}
}

type twimlResponse struct {
	XMLName  xml.Name       `xml:"Response"`
	Messages []twimlMessage `xml:"Message"`
}

type twimlMessage struct {
	Body  string `xml:"Body,omitempty"`
	Media string `xml:"Media,omitempty"`
}

// Render produces the TwiML document for a reply.
func (t *TwiMLRenderer) Render(reply *conversation.Reply) ([]byte, error) {
	resp := twimlResponse{}
	for _, seg := range reply.Segments {
		if seg.ImageURL != "" {
			resp.Messages = append(resp.Messages, twimlMessage{Media: seg.ImageURL})
			continue
		}
		resp.Messages = append(resp.Messages, twimlMessage{Body: t.marker + " " + seg.Text})
	}
	out, err := xml.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
