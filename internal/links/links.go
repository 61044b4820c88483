// Package links builds the outbound deep links used across the site.
package links

import (
	"strings"
)

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// Digits keeps only 0-9 from a phone number.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsApp returns a wa.me chat link for number with message prefilled.
// An unusable number yields "#".
func WhatsApp(number, message string) string {
	digits := Digits(number)
	if digits == "" {
		return "#"
	}
	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + EncodeComponent(message)
	}
	return link
}

func Tel(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}

func Mailto(email string) string {
	return "mailto:" + strings.TrimSpace(email)
}

func MapsSearch(query string) string {
	return mapsSearchBase + EncodeComponent(query)
}

// EncodeComponent percent-encodes s the way browsers' encodeURIComponent
// does: spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) are kept.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
