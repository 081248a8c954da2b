package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

func baseDescriptor() *domain.RequestDescriptor {
	return &domain.RequestDescriptor{
		Method: "GET",
		URL:    "/institutions",
		Params: map[string]string{"page": "1", "size": "20"},
	}
}

func TestFingerprint_StableAcrossParamOrder(t *testing.T) {
	a := baseDescriptor()
	b := &domain.RequestDescriptor{
		Method: "get",
		URL:    "/institutions",
		Params: map[string]string{"size": "20", "page": "1"},
	}

	// Maps have no order, but the canonicalised material must not care
	// either way; method casing must not matter.
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_ChangesWithEachField(t *testing.T) {
	base := Fingerprint(baseDescriptor())

	tests := []struct {
		name   string
		mutate func(d *domain.RequestDescriptor)
	}{
		{"method", func(d *domain.RequestDescriptor) { d.Method = "POST" }},
		{"url", func(d *domain.RequestDescriptor) { d.URL = "/invoices" }},
		{"response type", func(d *domain.RequestDescriptor) { d.ResponseType = domain.ResponseBlob }},
		{"range header", func(d *domain.RequestDescriptor) {
			d.Headers = map[string]string{"Range": "bytes=0-99"}
		}},
		{"param value", func(d *domain.RequestDescriptor) { d.Params["page"] = "2" }},
		{"body", func(d *domain.RequestDescriptor) { d.Body = map[string]any{"name": "x"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := baseDescriptor()
			tt.mutate(d)
			assert.NotEqual(t, base, Fingerprint(d))
		})
	}
}

func TestFingerprint_ParamValuesTruncated(t *testing.T) {
	long := strings.Repeat("a", 200)
	a := baseDescriptor()
	a.Params["q"] = long
	b := baseDescriptor()
	b.Params["q"] = long[:maxParamValueLen] + strings.Repeat("z", 50)

	// Values identical in their first 80 characters collide on purpose.
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_BodyCappedToFirstKeys(t *testing.T) {
	a := baseDescriptor()
	a.Body = map[string]any{}
	b := baseDescriptor()
	b.Body = map[string]any{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		a.Body[k] = 1
		b.Body[k] = 1
	}
	// The 11th sorted key falls outside the summary.
	b.Body["zz"] = "ignored"

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_BodyValueTruncated(t *testing.T) {
	a := baseDescriptor()
	a.Body = map[string]any{"text": strings.Repeat("x", 64)}
	b := baseDescriptor()
	b.Body = map[string]any{"text": strings.Repeat("x", maxBodyValueLen) + "different tail"}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_DistinguishesEarlyBodyKeys(t *testing.T) {
	a := baseDescriptor()
	a.Body = map[string]any{"question": "what is consideration"}
	b := baseDescriptor()
	b.Body = map[string]any{"question": "what is estoppel"}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
