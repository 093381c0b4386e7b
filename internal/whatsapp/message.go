// Package whatsapp renders cart and checkout snapshots into the order
// message the shop receives, and builds the wa.me link carrying it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/blackberrycakes/storefront/internal/cart"
	"github.com/blackberrycakes/storefront/internal/catalog"
	"github.com/blackberrycakes/storefront/internal/checkout"
)

const divider = "━━━━━━━━━━━━━━━━━━━━"

// Config identifies the receiving business.
type Config struct {
	BusinessName string
	Number       string // destination number with country code, no plus
	Currency     string // display currency prefix, e.g. "Rs"
}

// OrderDetails is the checkout snapshot the composer consumes.
type OrderDetails struct {
	FullName         string
	Phone            string
	SecondaryPhone   string
	DeliveryOption   string
	Address          string
	DeliveryLocation string
	Landmark         string
	DeliveryDate     string
	DeliveryTime     string
	Notes            string
}

// DetailsFromForm maps a validated checkout form to composer input.
func DetailsFromForm(f checkout.Form) OrderDetails {
	return OrderDetails{
		FullName:         f.FullName,
		Phone:            f.Phone,
		SecondaryPhone:   f.DeliveryDetails.SecondaryPhone,
		DeliveryOption:   f.DeliveryOption,
		Address:          f.Address,
		DeliveryLocation: f.DeliveryDetails.DeliveryLocation,
		Landmark:         f.DeliveryDetails.Landmark,
		DeliveryDate:     f.DeliveryDate,
		DeliveryTime:     f.DeliveryTime,
		Notes:            f.Notes,
	}
}

// CustomInquiry is the custom-cake request form.
type CustomInquiry struct {
	Name          string
	Phone         string
	Message       string
	PreferredDate string
	HasImage      bool
}

// Composer renders messages. It is pure: the same snapshots always produce
// the same bytes.
type Composer struct {
	cfg Config
}

// NewComposer returns a composer for the configured business.
func NewComposer(cfg Config) *Composer {
	if cfg.Currency == "" {
		cfg.Currency = "Rs"
	}
	return &Composer{cfg: cfg}
}

func (c *Composer) price(amount int) string {
	return c.cfg.Currency + " " + strconv.Itoa(amount)
}

// OrderMessage renders the order text. The layout is fixed: the shop reads
// these messages by hand and expects the exact line structure.
func (c *Composer) OrderMessage(lines []cart.Line, d OrderDetails, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎂 *%s - New Order*\n\n", c.cfg.BusinessName)

	b.WriteString("*Customer Details:*\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Customer Name: %s\n", d.FullName)
	fmt.Fprintf(&b, "Primary Phone: %s\n", d.Phone)

	if d.DeliveryOption == checkout.OptionDelivery {
		if d.SecondaryPhone != "" {
			fmt.Fprintf(&b, "Secondary Phone: %s\n", d.SecondaryPhone)
		}
		b.WriteString("Delivery: Yes\n")
		if d.Address != "" {
			fmt.Fprintf(&b, "Delivery Address: %s\n", d.Address)
		}
		if d.DeliveryLocation != "" {
			fmt.Fprintf(&b, "Delivery Location: %s\n", d.DeliveryLocation)
		}
		if d.Landmark != "" {
			fmt.Fprintf(&b, "Landmark: %s\n", d.Landmark)
		}
	} else {
		b.WriteString("Delivery: No (Store Pickup)\n")
	}

	fmt.Fprintf(&b, "Date: %s\n", d.DeliveryDate)
	fmt.Fprintf(&b, "Time: %s\n", d.DeliveryTime)

	if d.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", d.Notes)
	}

	b.WriteString("\n*Order Items:*\n")
	b.WriteString(divider + "\n")

	for i, l := range lines {
		fmt.Fprintf(&b, "\n%d. *%s*\n", i+1, l.Product.Name)
		fmt.Fprintf(&b, "   SKU: %s\n", l.Product.ID)
		fmt.Fprintf(&b, "   Category: %s\n", categoryLabel(l.Product.Category))

		if l.Product.Category == catalog.CategoryCakes {
			fmt.Fprintf(&b, "   Eggless: %s\n", yesNo(l.IsEggless))
			if l.SelectedSize > 0 {
				fmt.Fprintf(&b, "   Size: %s Pound\n", formatSize(l.SelectedSize))
			}
		}

		fmt.Fprintf(&b, "   Qty: %d\n", l.Quantity)
		fmt.Fprintf(&b, "   Price: %s\n", c.price(l.Subtotal()))
	}

	b.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&b, "*Subtotal: %s*\n", c.price(total))
	b.WriteString("*Delivery Fee: Calculated separately*\n")
	fmt.Fprintf(&b, "*Total: %s*\n", c.price(total))

	return b.String()
}

// CustomOrderMessage renders the custom-cake inquiry text.
func (c *Composer) CustomOrderMessage(inq CustomInquiry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎂 *%s - Custom Order Inquiry*\n\n", c.cfg.BusinessName)
	b.WriteString("*Customer Details:*\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Name: %s\n", inq.Name)
	fmt.Fprintf(&b, "Phone: %s\n", inq.Phone)

	if inq.PreferredDate != "" {
		fmt.Fprintf(&b, "Preferred Date: %s\n", inq.PreferredDate)
	}

	b.WriteString("\n*Cake Details/Message:*\n")
	b.WriteString(inq.Message + "\n")

	if inq.HasImage {
		b.WriteString("\n📷 *Note: Customer will send reference image in the next message*\n")
	}

	return b.String()
}

// Link URL-encodes the message onto the wa.me endpoint for the configured
// destination number.
func (c *Composer) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.cfg.Number, url.QueryEscape(message))
}

func categoryLabel(category string) string {
	if category == catalog.CategoryCakes {
		return "Cake"
	}
	return "Decoration"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// formatSize prints pound sizes without a trailing .0 for whole numbers.
func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
