package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

type addPayload struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty" validate:"omitempty,min=1,max=99"`
}

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"  oak   chair ", 0, "oak chair"},
		{"velvet sofa", 6, "velvet"},
		{"café latte", 4, "café"},
		{"ab cd", 3, "ab"},
		{"", 10, ""},
	}
	for _, tc := range cases {
		if got := SanitizeString(tc.in, tc.max); got != tc.want {
			t.Fatalf("SanitizeString(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":"2","qty":3}`))
	var payload addPayload
	require.NoError(t, DecodeJSONBody(req, &payload))
	require.Equal(t, addPayload{ProductID: "2", Qty: 3}, payload)
}

func TestDecodeJSONBodyRejections(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"unknown field": `{"productId":"2","coupon":"x"}`,
		"trailing":      `{"productId":"2"}{"productId":"3"}`,
		"missing id":    `{"qty":2}`,
		"qty too large": `{"productId":"2","qty":100}`,
		"too large":     `{"productId":"` + strings.Repeat("x", MaxBodyBytes) + `"}`,
	}
	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var payload addPayload
		err := DecodeJSONBody(req, &payload)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation code, got %v", name, err)
		}
	}
}

func TestValidationDetailsUseJSONNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"qty":0}`))
	var payload addPayload
	err := DecodeJSONBody(req, &payload)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	require.Equal(t, "is required", details["productId"])
}
