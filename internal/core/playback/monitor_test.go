package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorDetectsActiveComment(t *testing.T) {
	store := NewStore(Config{})
	store.SetDuration("Intro", 120)
	store.SetTime("Intro", 10.5)
	store.SetPlaying("Intro", true)

	comments := []*Comment{
		{Name: "vc1", VideoTitle: "Intro", Timestamp: 10},
		{Name: "vc2", VideoTitle: "Intro", Timestamp: 115},
	}

	hits := make(chan *Comment, 8)
	m := NewMonitor(store, Config{TickInterval: 5 * time.Millisecond}, func(_ string, c *Comment) {
		hits <- c
	})
	defer m.Close()

	m.Watch("Intro", func() []*Comment { return comments })

	select {
	case c := <-hits:
		require.NotNil(t, c)
		assert.Equal(t, "vc1", c.Name)
	case <-time.After(time.Second):
		t.Fatal("活跃批注未被采样到")
	}

	// 播放位置离开容差窗口后，回调收到 nil
	store.SetTime("Intro", 60)
	select {
	case c := <-hits:
		assert.Nil(t, c)
	case <-time.After(time.Second):
		t.Fatal("离开窗口未触发回调")
	}
}

func TestMonitorIgnoresPausedVideo(t *testing.T) {
	store := NewStore(Config{})
	store.SetTime("Intro", 10)

	hits := make(chan *Comment, 1)
	m := NewMonitor(store, Config{TickInterval: 5 * time.Millisecond}, func(_ string, c *Comment) {
		hits <- c
	})
	defer m.Close()

	m.Watch("Intro", func() []*Comment {
		return []*Comment{{Name: "vc1", VideoTitle: "Intro", Timestamp: 10}}
	})

	select {
	case <-hits:
		t.Fatal("暂停状态不应触发回调")
	case <-time.After(50 * time.Millisecond):
	}
}
