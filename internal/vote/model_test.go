package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeGoing.Valid())
	assert.True(t, TypeNotGoing.Valid())
	assert.True(t, TypeCourt.Valid())
	assert.True(t, TypeShuttle.Valid())
	assert.False(t, Type("MAYBE").Valid())
	assert.False(t, Type("").Valid())
}

func TestTypeAttendance(t *testing.T) {
	assert.True(t, TypeGoing.Attendance())
	assert.True(t, TypeNotGoing.Attendance())
	assert.False(t, TypeCourt.Attendance())
	assert.False(t, TypeShuttle.Attendance())
}
