// Package entity contains the core business objects of the project.
package entity

import "strings"

// Ingress classifies the client surface a request came from.
// It is recorded for audit and analytics, never for authorization decisions.
type Ingress string

const (
	// IngressWeb indicates a desktop/browser client.
	IngressWeb Ingress = "web"
	// IngressMobile indicates a mobile client.
	IngressMobile Ingress = "mobile"
)

// String returns the string representation of the Ingress.
func (i Ingress) String() string {
	return string(i)
}

// IsValid checks if the Ingress is a valid value.
func (i Ingress) IsValid() bool {
	switch i {
	case IngressWeb, IngressMobile:
		return true
	default:
		return false
	}
}

// ParseIngress derives the ingress from a User-Agent header value.
// Any agent carrying a "mobile" marker maps to IngressMobile; everything
// else, including an empty agent, defaults to IngressWeb.
func ParseIngress(userAgent string) Ingress {
	if strings.Contains(strings.ToLower(userAgent), "mobile") {
		return IngressMobile
	}

	return IngressWeb
}
