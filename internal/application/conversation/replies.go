package conversation

import (
	"fmt"
	"strings"

	"github.com/cjephuneh/tractor-whatsapp/internal/domain/catalog"
)

func welcomeReply() *Reply {
	return NewReply().Textf(
		"Welcome to Tractor House!\n" +
			"- browse: see every machine in stock\n" +
			"- recommend: get pointed at the right category\n" +
			"- view <id>: full details for one machine\n" +
			"- negotiate <id>: make us an offer",
	)
}

func recommendReply() *Reply {
	return NewReply().Textf(
		"What kind of work is the machine for? Reply with one of: farming, landscaping, construction.",
	)
}

func helpReply() *Reply {
	return NewReply().Textf(
		"Sorry, I didn't get that. Reply start to see everything I can do.",
	)
}

// listReply renders items in store order, one "id. name - price" line each.
func listReply(heading string, items []*catalog.Item) *Reply {
	if len(items) == 0 {
		return NewReply().Textf("Nothing in stock there right now. Reply browse to see the full catalog.")
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, heading)
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s - %.2f", item.ID, item.Name, item.Price))
	}
	return NewReply().Textf("%s", strings.Join(lines, "\n"))
}
