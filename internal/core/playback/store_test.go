package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaultOnMiss(t *testing.T) {
	s := NewStore(Config{})
	s.SetTime("unknown-video", 5)

	require.Equal(t, 1, s.Len())
	st := s.Snapshot("unknown-video")
	assert.Equal(t, 5.0, st.CurrentTime)
	assert.False(t, st.IsPlaying)
	assert.Empty(t, st.Draft)
}

func TestStoreSnapshotDoesNotCreate(t *testing.T) {
	s := NewStore(Config{})
	_ = s.Snapshot("ghost")
	assert.Equal(t, 0, s.Len())
}

func TestStoreClampTime(t *testing.T) {
	s := NewStore(Config{})
	s.SetDuration("a", 120)

	s.SetTime("a", -3)
	assert.Equal(t, 0.0, s.Snapshot("a").CurrentTime)

	s.SetTime("a", 500)
	assert.Equal(t, 120.0, s.Snapshot("a").CurrentTime)

	// 时长未知只做下界钳制
	s.SetTime("b", 99999)
	assert.Equal(t, 99999.0, s.Snapshot("b").CurrentTime)
}

func TestStoreDurationWriteOnce(t *testing.T) {
	s := NewStore(Config{})
	s.SetTime("a", 90)
	s.SetDuration("a", 120)
	s.SetDuration("a", 60)

	d, ok := s.Duration("a")
	require.True(t, ok)
	assert.Equal(t, 120.0, d)
	// 首次写入时长把越界位置钳回
	s.SetTime("a", 300)
	assert.Equal(t, 120.0, s.Snapshot("a").CurrentTime)
}

func TestStoreAppendDraft(t *testing.T) {
	s := NewStore(Config{})
	s.AppendDraft("a", "切口位置")
	s.AppendDraft("a", "偏外侧")
	assert.Equal(t, "切口位置 偏外侧", s.Snapshot("a").Draft)

	s.SetDraft("a", "重写")
	assert.Equal(t, "重写", s.Snapshot("a").Draft)
}

func TestStoreShouldSeek(t *testing.T) {
	s := NewStore(Config{})
	s.SetTime("a", 10)

	assert.False(t, s.ShouldSeek("a", 10.3))
	assert.True(t, s.ShouldSeek("a", 11.2))
	assert.True(t, s.ShouldSeek("a", 8))
}
