package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "500", formatAmount(500))
	assert.Equal(t, "4,000", formatAmount(4000))
	assert.Equal(t, "5,500", formatAmount(5500))
	assert.Equal(t, "1,234,567", formatAmount(1234567))
	assert.Equal(t, "-5,500", formatAmount(-5500))
}

func TestReloadNotifier(t *testing.T) {
	n := newReloadNotifier()

	id1, ch1 := n.Subscribe()
	id2, ch2 := n.Subscribe()
	assert.NotEqual(t, id1, id2)

	n.Notify()

	select {
	case <-ch1:
	default:
		t.Fatal("expected notification on first subscriber")
	}
	select {
	case <-ch2:
	default:
		t.Fatal("expected notification on second subscriber")
	}

	n.Unsubscribe(id1)
	_, ok := <-ch1
	assert.False(t, ok)

	n.Close()
	_, ok = <-ch2
	assert.False(t, ok)

	id3, ch3 := n.Subscribe()
	assert.Equal(t, -1, id3)
	_, ok = <-ch3
	assert.False(t, ok)
}
