package conversation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/session"
)

// CommandKind identifies the classified intent of an inbound message.
type CommandKind string

const (
	CmdStart     CommandKind = "START"
	CmdRecommend CommandKind = "RECOMMEND"
	CmdBrowse    CommandKind = "BROWSE"
	CmdCategory  CommandKind = "CATEGORY"
	CmdView      CommandKind = "VIEW"
	CmdNegotiate CommandKind = "NEGOTIATE"
	CmdOffer     CommandKind = "OFFER"
	CmdName      CommandKind = "NAME"
	CmdUnknown   CommandKind = "UNKNOWN"
)

// Command is the classified form of an inbound message.
type Command struct {
	Kind     CommandKind
	Category catalog.Category // CmdCategory
	ItemID   int              // CmdView, CmdNegotiate; 0 when the id did not parse
	Amount   string           // CmdOffer: raw amount candidate, unparsed
	Name     string           // CmdName: raw text, original casing preserved
}

var digitsPattern = regexp.MustCompile(`^\d+$`)

// reservedWords are command tokens that can never be accepted as a
// display name, so a user typing "browse" mid name-collection gets the
// invalid-name prompt rather than a renamed session.
var reservedWords = map[string]struct{}{
	"start": {}, "hi": {}, "hello": {}, "recommend": {}, "browse": {},
	"view": {}, "negotiate": {}, "offer": {},
	"farming": {}, "landscaping": {}, "construction": {},
}

func isReservedWord(text string) bool {
	_, ok := reservedWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// Classify maps an inbound message onto a Command, honoring the
// stage-precedence rules of the negotiation protocol:
//
//  1. While a negotiation is collecting a name, every message is a name
//     attempt — even text that looks like a recognized command.
//  2. While collecting an offer, only the offer/negotiate/view keywords
//     and digit-only messages are matched as commands; anything else
//     falls through to the offer handler.
//  3. Otherwise the ordered stateless command set applies, with
//     digit-only input treated as a view of that item.
func Classify(raw string, sess *session.Session) Command {
	if sess.Negotiating(session.StageCollectingName) {
		return Command{Kind: CmdName, Name: raw}
	}

	norm := strings.ToLower(strings.TrimSpace(raw))
	keyword, rest := splitKeyword(norm)

	if sess.Negotiating(session.StageCollectingOffer) {
		switch {
		case keyword == "offer":
			return Command{Kind: CmdOffer, Amount: rest}
		case keyword == "negotiate":
			return Command{Kind: CmdNegotiate, ItemID: parseID(rest)}
		case keyword == "view":
			return Command{Kind: CmdView, ItemID: parseID(rest)}
		case digitsPattern.MatchString(norm):
			return Command{Kind: CmdView, ItemID: parseID(norm)}
		default:
			// Bare text while an offer is expected is the offer itself.
			return Command{Kind: CmdOffer, Amount: norm}
		}
	}

	if category, ok := catalog.ParseCategory(norm); ok {
		return Command{Kind: CmdCategory, Category: category}
	}

	switch {
	case norm == "start" || norm == "hi" || norm == "hello":
		return Command{Kind: CmdStart}
	case norm == "recommend":
		return Command{Kind: CmdRecommend}
	case norm == "browse":
		return Command{Kind: CmdBrowse}
	case keyword == "view":
		return Command{Kind: CmdView, ItemID: parseID(rest)}
	case digitsPattern.MatchString(norm):
		return Command{Kind: CmdView, ItemID: parseID(norm)}
	case keyword == "negotiate":
		return Command{Kind: CmdNegotiate, ItemID: parseID(rest)}
	case keyword == "offer":
		return Command{Kind: CmdOffer, Amount: rest}
	default:
		return Command{Kind: CmdUnknown}
	}
}

func splitKeyword(norm string) (keyword, rest string) {
	fields := strings.Fields(norm)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.TrimSpace(strings.TrimPrefix(norm, fields[0]))
}

func parseID(token string) int {
	id, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
