package passes

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyPayload(t *testing.T) {
	issued := time.Date(2026, 10, 5, 11, 0, 0, 0, time.UTC)
	payload := SignPayload("a123", "l456", issued)

	parts := strings.Split(payload, "|")
	require.Len(t, parts, 4)
	assert.Equal(t, "a123", parts[0])
	assert.Equal(t, "l456", parts[1])

	assert.True(t, VerifyPayload(payload))
}

func TestVerifyPayloadTampered(t *testing.T) {
	payload := SignPayload("a123", "l456", time.Now())

	tampered := strings.Replace(payload, "a123", "a999", 1)
	assert.False(t, VerifyPayload(tampered))

	assert.False(t, VerifyPayload("a123|l456|12345"))
	assert.False(t, VerifyPayload(""))
	assert.False(t, VerifyPayload("nodelimiter"))
}
