package cadical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "SATISFIABLE", Satisfiable.String())
	assert.Equal(t, "UNSATISFIABLE", Unsatisfiable.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())
}
