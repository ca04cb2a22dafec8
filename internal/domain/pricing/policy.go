package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

// DefaultPolicy is the acceptance rule applied when no override is
// configured: an offer within 10% of the asking price closes the deal.
// Comparison is inclusive.
const DefaultPolicy = "offer >= price * 0.9"

// minimumRatio mirrors the default policy; the quoted minimum acceptable
// amount is always this share of the asking price.
const minimumRatio = 0.9

// Policy decides whether an integer offer closes a deal for an item
// priced at a given amount. The rule is a boolean expression over the
// parameters "offer" and "price".
type Policy struct {
	source string
	expr   *govaluate.EvaluableExpression
}

// NewPolicy compiles an acceptance expression. An empty expression
// selects DefaultPolicy.
func NewPolicy(expression string) (*Policy, error) {
	source := strings.TrimSpace(expression)
	if source == "" {
		source = DefaultPolicy
	}
	expr, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return nil, fmt.Errorf("invalid offer policy %q: %w", source, err)
	}
	return &Policy{source: source, expr: expr}, nil
}

func (p *Policy) String() string {
	return p.source
}

// Accepts evaluates the policy for an offer against an asking price.
func (p *Policy) Accepts(offer int64, price float64) (bool, error) {
	result, err := p.expr.Evaluate(map[string]interface{}{
		"offer": float64(offer),
		"price": price,
	})
	if err != nil {
		return false, fmt.Errorf("offer policy evaluation: %w", err)
	}
	accepted, ok := result.(bool)
	if !ok {
		return false, errors.New("offer policy did not evaluate to boolean")
	}
	return accepted, nil
}

// MinimumAcceptable returns the lowest amount quoted back to the user
// when an offer is rejected.
func MinimumAcceptable(price float64) float64 {
	return price * minimumRatio
}

// FormatMinimum renders the minimum acceptable amount with two decimal
// places regardless of whether the price is fractional.
func FormatMinimum(price float64) string {
	return fmt.Sprintf("%.2f", MinimumAcceptable(price))
}
