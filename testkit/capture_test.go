package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ceyewan/flog"
)

func TestCaptureRecordsDeepCopies(t *testing.T) {
	c := NewCapture()
	cb := c.Callbacks("r")

	data := []byte("abc")
	cb.Write(data, flog.LevelInfo, flog.C("x"), "r")
	data[0] = 'Z'

	writes := c.Writes()
	assert.Len(t, writes, 1)
	assert.Equal(t, "abc", string(writes[0].Data))
	assert.Equal(t, "r", writes[0].Reserved)
}

func TestCaptureEnabledDefaultsToAllow(t *testing.T) {
	c := NewCapture()
	cb := c.Callbacks(nil)

	assert.True(t, cb.Enabled(flog.LevelTrace, flog.Category{}, nil))

	c.SetEnabled(func(level flog.Level, _ flog.Category) bool { return level >= flog.LevelError })
	assert.False(t, cb.Enabled(flog.LevelInfo, flog.Category{}, nil))
	assert.True(t, cb.Enabled(flog.LevelError, flog.Category{}, nil))
}

func TestWriteOnlyCallbacks(t *testing.T) {
	c := NewCapture()
	cb := c.WriteOnlyCallbacks(nil)

	assert.Nil(t, cb.Message)
	assert.Nil(t, cb.Enabled)
	assert.NotNil(t, cb.Write)
}

func TestWrittenTextConcatenatesInOrder(t *testing.T) {
	c := NewCapture()
	cb := c.Callbacks(nil)

	cb.Write([]byte("00"), flog.LevelTrace, flog.Category{}, nil)
	cb.Write([]byte("ff"), flog.LevelTrace, flog.Category{}, nil)

	assert.Equal(t, "00ff", c.WrittenText())
	assert.Equal(t, 2, c.Count())

	c.Reset()
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.WrittenText())
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 8)
}
