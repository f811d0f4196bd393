package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestKVToOtelAttributes(t *testing.T) {
	t.Parallel()

	attrs := kvToOtelAttributes(
		"method", "getblockchaininfo",
		"id", uint64(18446744073709551615),
		"ok", true,
		"elapsed", 1500*time.Millisecond,
		"error", errors.New("connection refused"),
		"dangling",
	)

	assert.Equal(t, []attribute.KeyValue{
		attribute.String("method", "getblockchaininfo"),
		attribute.String("id", "18446744073709551615"),
		attribute.Bool("ok", true),
		attribute.String("elapsed", "1.5s"),
		attribute.String("error", "connection refused"),
		attribute.String("dangling", missingAttributeValue),
	}, attrs)
}

func TestKVToOtelAttributes_InvalidKey(t *testing.T) {
	t.Parallel()

	attrs := kvToOtelAttributes("a", 1, 2, "b")
	assert.Len(t, attrs, 2)
	assert.Equal(t, attribute.Int("a", 1), attrs[0])
	assert.Equal(t, attribute.Key(invalidAttributeKey), attrs[1].Key)
}
