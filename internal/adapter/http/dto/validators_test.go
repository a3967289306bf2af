package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Address:     "  alice  ",
		Password:    "  pass1234  ",
		DisplayName: " Alice Parent ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Address)
	assert.Equal(t, "pass1234", req.Password)
	assert.Equal(t, "Alice Parent", req.DisplayName)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := PaymentRequest{
		Institution: "clinic-1",
		Purpose:     "checkup <script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Purpose, "&lt;script&gt;")
	assert.NotContains(t, req.Purpose, "<script>")
}

func TestSanitizeStruct_StringSlice(t *testing.T) {
	req := StrategyRequest{
		StablecoinAllocation: 60,
		DefiAllocation:       40,
		PreferredProtocols:   []string{" aave ", "<b>curve</b>"},
	}
	SanitizeStruct(&req)

	assert.Equal(t, []string{"aave", "&lt;b&gt;curve&lt;/b&gt;"}, req.PreferredProtocols)
	assert.Equal(t, uint32(60), req.StablecoinAllocation)
}

func TestSanitizeStruct_NilSliceIsNoOp(t *testing.T) {
	req := StrategyRequest{}
	SanitizeStruct(&req)
	assert.Nil(t, req.PreferredProtocols)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"guardian-001",
		"GUARDIAN_002",
		"a.b.c",
		"0xAbC123",
		"did:example:alice",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ref 001",     // space
		"ref<001>",    // angle brackets
		"ref;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ref\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
