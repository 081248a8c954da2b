package gateway

import (
	"strings"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// Endpoint classes, matched by case-insensitive substring on the URL path.
//
// Auth endpoints manage their own 401s and must work with an expired (or
// absent) token. Public payment endpoints stay reachable with an expired
// token so an in-flight payment confirmation is never derailed.
// Boot-critical endpoints gate application startup.
var (
	authEndpoints = []string{
		"/auth/login",
		"/auth/2fa/confirm",
		"/auth/2fa/verify",
		"/auth/2fa/resend",
	}

	publicPaymentEndpoints = []string{
		"/payments/confirm",
		"/payments/intent/by-reference",
		"/payments/return-visit",
	}

	bootCriticalEndpoints = []string{
		"/users/me",
		"/library",
		"/access-check",
	}
)

func matchesAny(url string, patterns []string) bool {
	lower := strings.ToLower(url)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func isAuthEndpoint(url string) bool          { return matchesAny(url, authEndpoints) }
func isPublicPaymentEndpoint(url string) bool { return matchesAny(url, publicPaymentEndpoints) }
func isBootCritical(url string) bool          { return matchesAny(url, bootCriticalEndpoints) }

// isDocumentDownload matches the per-document download path.
func isDocumentDownload(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, "/documents/") && strings.Contains(lower, "/download")
}

// throttleExemption names one class of traffic that must never be
// deduplicated. Rules are evaluated in order; the first match wins.
type throttleExemption struct {
	name    string
	applies func(d *domain.RequestDescriptor) bool
}

var throttleExemptions = []throttleExemption{
	{"bypass-flag", func(d *domain.RequestDescriptor) bool { return d.BypassThrottle }},
	{"boot-critical", func(d *domain.RequestDescriptor) bool { return isBootCritical(d.URL) }},
	{"document-download", func(d *domain.RequestDescriptor) bool { return isDocumentDownload(d.URL) }},
	{"range-read", func(d *domain.RequestDescriptor) bool { return d.HasRange() }},
	{"binary-response", func(d *domain.RequestDescriptor) bool { return d.ResponseType.IsBinary() }},
}

// throttleExempt reports whether the descriptor is exempt from duplicate
// suppression, and which rule exempted it.
func throttleExempt(d *domain.RequestDescriptor) (string, bool) {
	for _, rule := range throttleExemptions {
		if rule.applies(d) {
			return rule.name, true
		}
	}
	return "", false
}

// paymentReturnContext reports whether the given client location is inside
// the designated payment-return flow: either the payment return path
// itself, or a dashboard documents/library view carrying the
// paid-redirect query signal from the provider.
func paymentReturnContext(location string) bool {
	lower := strings.ToLower(location)
	if strings.Contains(lower, "/payments/return") {
		return true
	}
	inDocs := strings.Contains(lower, "/dashboard/documents") || strings.Contains(lower, "/dashboard/library")
	paid := strings.Contains(lower, "paid=1") && strings.Contains(lower, "provider=paystack")
	return inDocs && paid
}
