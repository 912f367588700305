package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionOfClamp(t *testing.T) {
	assert.Equal(t, 50.0, PositionOf(60, 120))
	assert.Equal(t, 0.0, PositionOf(-5, 120))
	assert.Equal(t, 100.0, PositionOf(300, 120))
	assert.Equal(t, 0.0, PositionOf(10, 0))
	assert.InDelta(t, 95.83, PositionOf(115, 120), 0.01)
}

func TestActiveAtFirstMatchWins(t *testing.T) {
	comments := []*Comment{
		{Name: "c1", Timestamp: 10},
		{Name: "c2", Timestamp: 11},
		{Name: "c3", Timestamp: 115},
	}

	got := ActiveAt(comments, 10.5, 2)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.Name)

	assert.Nil(t, ActiveAt(comments, 60, 2))
}

func TestByVideo(t *testing.T) {
	comments := []*Comment{
		{Name: "c1", VideoTitle: "开腹", Timestamp: 30},
		{Name: "c2", VideoTitle: "缝合", Timestamp: 5},
		{Name: "c3", VideoTitle: "开腹", Timestamp: 10},
	}

	got := ByVideo(comments, "开腹")
	require.Len(t, got, 2)
	assert.Equal(t, "c3", got[0].Name)
	assert.Equal(t, "c1", got[1].Name)

	// 悬空引用返回空切片
	assert.Empty(t, ByVideo(comments, "不存在的视频"))
}
