// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshell/vshell/internal/vendor"
)

func TestValues(t *testing.T) {
	tests := []struct {
		name string
		item vendor.Item
		want map[string]string
	}{
		{
			name: "school",
			item: vendor.SchoolItem{ID: "1", Name: "Aarnav Radhu", Parent: "Vaibhav Radhu", ClassSection: "Play Group - A", AdmissionNo: "408766"},
			want: map[string]string{"Parent": "Vaibhav Radhu", "Class-Section": "Play Group - A", "Admission No": "408766"},
		},
		{
			name: "school with missing attributes",
			item: vendor.SchoolItem{ID: "3", Name: "Viyom"},
			want: map[string]string{"Parent": "", "Class-Section": "", "Admission No": ""},
		},
		{
			name: "pharmacy",
			item: vendor.PharmacyItem{ID: "P-1", Name: "Paracetamol", Category: "Analgesic", Stock: 12400, Price: decimal.RequireFromString("25.5"), Prescription: true},
			want: map[string]string{"Category": "Analgesic", "Manufacturer": "", "Stock": "12,400", "Price": "25.50", "Prescription": "Yes"},
		},
		{
			name: "retail",
			item: vendor.RetailItem{ID: "R-1", Name: "Rice", SKU: "RICE-5", Stock: 0, Price: decimal.NewFromInt(649)},
			want: map[string]string{"SKU": "RICE-5", "Category": "", "Stock": "0", "Price": "649.00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Values(tt.item)
			require.NoError(t, err)
			got := map[string]string{}
			for _, v := range values {
				got[v.Label] = v.Value
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValues_FieldOrder(t *testing.T) {
	values, err := Values(vendor.SchoolItem{ID: "1", Name: "A"})
	require.NoError(t, err)
	labels := make([]string, 0, len(values))
	for _, v := range values {
		labels = append(labels, v.Label)
	}
	assert.Equal(t, []string{"Parent", "Class-Section", "Admission No"}, labels)
}

func TestFor(t *testing.T) {
	for _, vt := range vendor.Types {
		l, ok := For(vt)
		assert.True(t, ok, vt)
		assert.Equal(t, vt, l.Type)
		assert.NotEmpty(t, l.Fields)
	}

	l, ok := For("library")
	assert.False(t, ok)
	assert.Equal(t, vendor.Type("library"), l.Type)
	assert.Equal(t, "Items", l.ItemLabel)
	assert.Empty(t, l.Fields)
}

func TestRegister(t *testing.T) {
	before, _ := For(vendor.TypeRetail)
	t.Cleanup(func() { Register(before) })

	Register(Layout{Type: vendor.TypeRetail, ItemLabel: "Goods", Fields: []Field{{Key: "sku", Label: "Code"}}})
	values, err := Values(vendor.RetailItem{ID: "R-1", SKU: "X-1"})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "X-1", values[0].Value)
}

func TestItemLabel(t *testing.T) {
	assert.Equal(t, "Pupils", ItemLabel(vendor.TypeSchool, vendor.DetailsScreen{ItemLabel: "Pupils"}))
	assert.Equal(t, "Students", ItemLabel(vendor.TypeSchool, vendor.DetailsScreen{}))
	assert.Equal(t, "Products", ItemLabel(vendor.TypePharmacy, vendor.DetailsScreen{}))
}

func TestOfferings(t *testing.T) {
	info := vendor.InfoScreen{
		Facilities: []vendor.Facility{{Name: "Library"}},
		Services:   []vendor.Facility{{Name: "Home Delivery"}},
	}
	assert.Equal(t, "Library", Offerings(vendor.TypeSchool, info)[0].Name)
	assert.Equal(t, "Home Delivery", Offerings(vendor.TypePharmacy, info)[0].Name)
	assert.Equal(t, "Home Delivery", Offerings(vendor.TypeRetail, info)[0].Name)
}
