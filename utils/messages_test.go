package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLocale(t *testing.T) {
	cases := []struct {
		header, def, want string
	}{
		{"", "th", "th"},
		{"", "en", "en"},
		{"", "de", "th"},
		{"en-US,en;q=0.9", "th", "en"},
		{"th-TH,th;q=0.9,en;q=0.5", "en", "th"},
		{"fr-FR", "en", "en"},
		{";;;garbage", "th", "th"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchLocale(tc.header, tc.def), "header %q def %q", tc.header, tc.def)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "จองห้องพักสำเร็จ", T("th", MsgBookingCreated))
	assert.Equal(t, "Room booked successfully", T("en", MsgBookingCreated))
	assert.Equal(t, "ลงทะเบียนสำเร็จ", T("xx", MsgRegistrationCreated))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalog["th"] {
		_, ok := catalog["en"][key]
		assert.True(t, ok, "en is missing %s", key)
	}
	assert.Len(t, catalog["en"], len(catalog["th"]))
}
