package cpu_test

import (
	"testing"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"github.com/stretchr/testify/assert"
)

func TestSerialDispatcherRunsInOrder(t *testing.T) {
	d := cpu.NewSerialDispatcher(4)

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		assert.True(t, d.Post(func() { got = append(got, i) }))
	}
	d.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestSerialDispatcherRejectsAfterClose(t *testing.T) {
	d := cpu.NewSerialDispatcher(0)
	d.Close()
	d.Close()

	assert.False(t, d.Post(func() {}))
}

func TestSerialDispatcherRejectsNil(t *testing.T) {
	d := cpu.NewSerialDispatcher(1)
	defer d.Close()

	assert.False(t, d.Post(nil))
}
