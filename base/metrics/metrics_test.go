package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"kind:quota_exceeded", "op:claim"}, parseTag([]string{"kind", "quota_exceeded", "op", "claim"}))
}

func TestBumpWithoutAgent(t *testing.T) {
	req := require.New(t)
	m := New("stake", WithoutPodName())
	req.NotPanics(func() {
		m.BumpSum("rejection", 1, "kind", "below_minimum")
		m.BumpHistogram("positions", 3)
		m.BumpTime("check.time").End()
	})
	_, ok := nextClient().(*LogClient)
	req.True(ok)
}

func TestOddTagsDoNotPanic(t *testing.T) {
	m := New("stake", WithoutPodName())
	require.NotPanics(t, func() {
		m.BumpSum("rejection", 1, "kind")
	})
}
