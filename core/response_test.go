package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseString(t *testing.T) {
	r := NewResponse("System is up, running with no bugs. Honest.", 0.2)
	assert.Equal(t, "0.20:System is up, running with no bu...", r.String())

	short := NewResponse("ok", 1)
	assert.Equal(t, "1.00:ok...", short.String())
}
