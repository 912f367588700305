package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRequiresTwoVideos(t *testing.T) {
	s := NewStore(Config{})
	s.SetTime("A", 42)

	n, err := NewSynchronizer(s).Sync("A", []string{"A"})
	require.Error(t, err)
	assert.Equal(t, 0, n)
	// 报错时零写入
	assert.Equal(t, 1, s.Len())
}

func TestSyncPushesReferenceTime(t *testing.T) {
	s := NewStore(Config{})
	s.SetTime("A", 42)
	s.SetTime("B", 1)
	s.SetTime("C", 99)

	n, err := NewSynchronizer(s).Sync("A", []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 42.0, s.Snapshot("A").CurrentTime)
	assert.Equal(t, 42.0, s.Snapshot("B").CurrentTime)
	assert.Equal(t, 42.0, s.Snapshot("C").CurrentTime)
}

func TestActiveVideosByLayout(t *testing.T) {
	titles := []string{"A", "B", "C"}

	assert.Nil(t, ActiveVideos(LayoutSingle, titles))
	assert.Equal(t, []string{"A", "B"}, ActiveVideos(LayoutSideBySide, titles))
	assert.Equal(t, titles, ActiveVideos(LayoutGrid, titles))
}
