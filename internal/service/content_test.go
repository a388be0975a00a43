package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContent(t *testing.T) {
	tests := []struct {
		name    string
		qrType  string
		content string
		want    string
	}{
		{"url without scheme", "url", "example.com", "https://example.com"},
		{"url with https", "url", "https://example.com", "https://example.com"},
		{"url with http", "url", "http://example.com", "http://example.com"},
		{"email", "email", "hi@example.com", "mailto:hi@example.com"},
		{"phone", "phone", "+15551234567", "tel:+15551234567"},
		{"sms", "sms", "+15551234567", "sms:+15551234567"},
		{"wifi with security", "wifi", "MyNet:pass123:WPA2", "WIFI:T:WPA2;S:MyNet;P:pass123;H:false;;"},
		{"wifi defaults to WPA", "wifi", "MyNet:pass123", "WIFI:T:WPA;S:MyNet;P:pass123;H:false;;"},
		{"wifi without password part", "wifi", "MyNet", "MyNet"},
		{"vcard wraps plain name", "vcard", "Jane Doe", "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nEND:VCARD"},
		{"vcard passthrough", "vcard", "BEGIN:VCARD\nVERSION:3.0\nFN:X\nEND:VCARD", "BEGIN:VCARD\nVERSION:3.0\nFN:X\nEND:VCARD"},
		{"text passthrough", "text", "hello world", "hello world"},
		{"unknown type passthrough", "other", "whatever", "whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatContent(tt.qrType, tt.content))
		})
	}
}

func TestWifiCredentials(t *testing.T) {
	network, pass := WifiCredentials("MyNet:secret")
	assert.Equal(t, "MyNet", network)
	assert.Equal(t, "secret", pass)

	network, pass = WifiCredentials("")
	assert.Equal(t, "Unknown Network", network)
	assert.Equal(t, "", pass)

	network, pass = WifiCredentials("JustSSID")
	assert.Equal(t, "JustSSID", network)
	assert.Equal(t, "", pass)
}
