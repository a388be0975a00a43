package service

import (
	"fmt"
	"strings"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

// FormatContent maps a QR type plus raw content to the literal string encoded
// into the symbol. The redirect endpoint reuses it for the redirect target of
// the url/email/phone/sms types.
func FormatContent(qrType, content string) string {
	switch qrType {
	case models.TypeEmail:
		return "mailto:" + content
	case models.TypePhone:
		return "tel:" + content
	case models.TypeSMS:
		return "sms:" + content
	case models.TypeURL:
		if !strings.HasPrefix(content, "http://") && !strings.HasPrefix(content, "https://") {
			return "https://" + content
		}
		return content
	case models.TypeWifi:
		ssid, pass, security, ok := parseWifiContent(content)
		if !ok {
			return content
		}
		return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:false;;", security, ssid, pass)
	case models.TypeVCard:
		if !strings.Contains(content, "BEGIN:VCARD") {
			return "BEGIN:VCARD\nVERSION:3.0\nFN:" + content + "\nEND:VCARD"
		}
		return content
	default:
		// text and anything unrecognized pass through untouched
		return content
	}
}

// parseWifiContent splits the colon-delimited "SSID:password[:security]" form.
// Security defaults to WPA when omitted.
func parseWifiContent(content string) (ssid, password, security string, ok bool) {
	parts := strings.Split(content, ":")
	if len(parts) < 2 {
		return "", "", "", false
	}
	security = "WPA"
	if len(parts) > 2 && parts[2] != "" {
		security = parts[2]
	}
	return parts[0], parts[1], security, true
}

// WifiCredentials extracts the network name and password for the inline HTML
// page the redirect endpoint serves for wifi codes.
func WifiCredentials(content string) (network, password string) {
	parts := strings.Split(content, ":")
	network = "Unknown Network"
	if len(parts) > 0 && parts[0] != "" {
		network = parts[0]
	}
	if len(parts) > 1 {
		password = parts[1]
	}
	return network, password
}
