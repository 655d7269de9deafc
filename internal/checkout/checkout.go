// Package checkout turns the current bag into a WhatsApp deep link. That is
// the entire checkout protocol: no order record, no payment confirmation,
// no receipt. The bag is left untouched after the link is issued.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"storefront-service/internal/cart"
)

// Conf carries the deep link settings.
type Conf struct {
	StoreName      string
	WhatsAppNumber string
}

// ErrEmptyCart is returned when there is nothing to order.
var ErrEmptyCart = fmt.Errorf("cart is empty")

// OrderLink builds the wa.me URL carrying the itemized order summary.
func (c Conf) OrderLink(items []cart.Item) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	message := c.OrderMessage(items)
	return "https://wa.me/" + c.WhatsAppNumber + "?text=" + url.QueryEscape(message), nil
}

// OrderMessage renders the plain-text summary: a greeting, one bullet line
// per item, the total, and a confirmation request.
func (c Conf) OrderMessage(items []cart.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s! I'd like to place an order:\n\n", c.StoreName)

	var total float64
	for _, it := range items {
		line := it.Price * float64(it.Quantity)
		total += line
		fmt.Fprintf(&b, "• %s (Qty: %d) - ₹%s\n", it.Name, it.Quantity, formatAmount(line))
	}

	fmt.Fprintf(&b, "\n*Total: ₹%s*\n\nPlease confirm availability and share payment details.", formatAmount(total))
	return b.String()
}

// formatAmount renders an amount with thousands separators, dropping the
// fraction when it is whole.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + fracPart
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + fracPart
}
