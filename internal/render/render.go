// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/vshell/vshell/internal/vendor"
)

// Kind decides how a field value is formatted.
type Kind int

const (
	KindText Kind = iota
	KindCount
	KindMoney
	KindFlag
)

// Field is one attribute of an item as screens show it. Key is the item's
// JSON attribute name.
type Field struct {
	Key   string
	Label string
	Kind  Kind
}

// Layout is the presentation of one vendor type.
type Layout struct {
	Type      vendor.Type
	ItemLabel string
	ItemIcon  string
	Fields    []Field

	About      string
	Manager    string
	TotalItems string
	Staff      string
	Offerings  string
	// UseServices selects InfoScreen.Services over Facilities.
	UseServices bool
}

// FieldValue is a formatted field of a specific item.
type FieldValue struct {
	Field
	Value string
}

var (
	mu      sync.RWMutex
	layouts = map[vendor.Type]Layout{
		vendor.TypeSchool: {
			Type:      vendor.TypeSchool,
			ItemLabel: "Students",
			ItemIcon:  "👦",
			Fields: []Field{
				{Key: "parent", Label: "Parent"},
				{Key: "classSection", Label: "Class-Section"},
				{Key: "admissionNo", Label: "Admission No"},
			},
			About:      "About Our School",
			Manager:    "Principal",
			TotalItems: "Students",
			Staff:      "Teachers",
			Offerings:  "Facilities",
		},
		vendor.TypePharmacy: {
			Type:      vendor.TypePharmacy,
			ItemLabel: "Products",
			ItemIcon:  "💊",
			Fields: []Field{
				{Key: "category", Label: "Category"},
				{Key: "manufacturer", Label: "Manufacturer"},
				{Key: "stock", Label: "Stock", Kind: KindCount},
				{Key: "price", Label: "Price", Kind: KindMoney},
				{Key: "prescription", Label: "Prescription", Kind: KindFlag},
			},
			About:       "About Our Store",
			Manager:     "Manager",
			TotalItems:  "Items",
			Staff:       "Staff",
			Offerings:   "Services",
			UseServices: true,
		},
		vendor.TypeRetail: {
			Type:      vendor.TypeRetail,
			ItemLabel: "Products",
			ItemIcon:  "🛍️",
			Fields: []Field{
				{Key: "sku", Label: "SKU"},
				{Key: "category", Label: "Category"},
				{Key: "stock", Label: "Stock", Kind: KindCount},
				{Key: "price", Label: "Price", Kind: KindMoney},
			},
			About:       "About Our Store",
			Manager:     "Manager",
			TotalItems:  "Items",
			Staff:       "Staff",
			Offerings:   "Services",
			UseServices: true,
		},
	}
)

// generic is used for vendor types without an entry: id and name only.
var generic = Layout{
	ItemLabel:  "Items",
	ItemIcon:   "•",
	About:      "About Us",
	Manager:    "Manager",
	TotalItems: "Items",
	Staff:      "Staff",
	Offerings:  "Services",
}

// Register adds or replaces the layout of l.Type.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()
	layouts[l.Type] = l
}

// For returns the layout of t. Unknown types get the generic layout and ok is
// false.
func For(t vendor.Type) (Layout, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := layouts[t]
	if !ok {
		g := generic
		g.Type = t
		return g, false
	}
	return l, true
}

// Values formats the layout fields of item. Attributes the item leaves empty
// come back as "".
func Values(item vendor.Item) ([]FieldValue, error) {
	l, _ := For(item.VendorType())

	doc, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item %s: %w", item.ItemID(), err)
	}

	values := make([]FieldValue, 0, len(l.Fields))
	for _, f := range l.Fields {
		values = append(values, FieldValue{
			Field: f,
			Value: format(f.Kind, gjson.GetBytes(doc, f.Key)),
		})
	}
	return values, nil
}

// ItemLabel is the heading of the details collection; the document's own
// label wins over the layout's.
func ItemLabel(t vendor.Type, details vendor.DetailsScreen) string {
	if details.ItemLabel != "" {
		return details.ItemLabel
	}
	l, _ := For(t)
	return l.ItemLabel
}

// Offerings returns the facilities or services the info screen lists.
func Offerings(t vendor.Type, info vendor.InfoScreen) []vendor.Facility {
	l, _ := For(t)
	if l.UseServices {
		return info.Services
	}
	return info.Facilities
}

func format(kind Kind, r gjson.Result) string {
	if !r.Exists() {
		return ""
	}
	switch kind {
	case KindCount:
		return humanize.Comma(r.Int())
	case KindMoney:
		d, err := decimal.NewFromString(r.String())
		if err != nil {
			return r.String()
		}
		return d.StringFixed(2)
	case KindFlag:
		if r.Bool() {
			return "Yes"
		}
		return "No"
	default:
		return r.String()
	}
}
