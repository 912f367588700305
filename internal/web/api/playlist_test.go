package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/surgtrain/scrub/internal/core/session"
)

func TestGeneratePlaylistDiscontinuityBetweenSegments(t *testing.T) {
	videos := []*session.Video{
		{Title: "part1", VideoFile: "part1.mp4", Duration: 120},
		{Title: "part2", VideoFile: "part2.mp4", Duration: 95},
		{Title: "part3", VideoFile: "part3.mp4", Duration: 60},
	}

	content := generatePlaylist(videos)
	require.NotEmpty(t, content)

	// 三段视频之间只有两个边界
	require.Equal(t, 2, strings.Count(content, "#EXT-X-DISCONTINUITY"))

	first := strings.Index(content, "part1.mp4")
	second := strings.Index(content, "part2.mp4")
	third := strings.Index(content, "part3.mp4")
	require.True(t, first >= 0 && second > first && third > second)

	// 首段之前不允许出现 DISCONTINUITY
	require.NotContains(t, content[:first], "#EXT-X-DISCONTINUITY")
	// 后续每段之前各有一个
	require.Contains(t, content[first:second], "#EXT-X-DISCONTINUITY")
	require.Contains(t, content[second:third], "#EXT-X-DISCONTINUITY")
}

func TestGeneratePlaylistSkipsEmptyFile(t *testing.T) {
	videos := []*session.Video{
		{Title: "missing", VideoFile: "", Duration: 30},
		{Title: "part1", VideoFile: "part1.mp4", Duration: 120},
		{Title: "part2", VideoFile: "part2.mp4", Duration: 95},
	}

	content := generatePlaylist(videos)
	require.NotContains(t, content, "missing")

	// 被跳过的视频不算边界，首个实际片段之前仍不应有 DISCONTINUITY
	first := strings.Index(content, "part1.mp4")
	require.True(t, first >= 0)
	require.NotContains(t, content[:first], "#EXT-X-DISCONTINUITY")
	require.Equal(t, 1, strings.Count(content, "#EXT-X-DISCONTINUITY"))
}
