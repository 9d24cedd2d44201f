package cli

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/clientnotes/internal/models"
)

// TelLink builds a tel: URL for the given phone number.
func TelLink(phone string) string {
	return "tel:" + phone
}

// WhatsAppLink builds a wa.me URL for the record's phone with a prefilled
// message of the form "<name>, <note>". Everything but digits is stripped
// from the number.
func WhatsAppLink(r *models.Record) string {
	var digits strings.Builder
	for _, c := range r.Phone {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}

	msg := r.Note
	if r.Name != "" {
		msg = r.Name + ", " + msg
	}

	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(msg)
}
