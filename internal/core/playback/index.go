package playback

import (
	"math"
	"sort"
)

// PositionOf 把时间戳换算成进度条百分比，先钳制后除
// 时长非正数没有合理语义，返回 0 由调用方特判
func PositionOf(timestamp, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	ratio := timestamp / duration
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

// ActiveAt 返回当前时间附近的活跃批注
// 多条命中时按列表顺序取第一条，每次只浮现一条
func ActiveAt(comments []*Comment, currentTime, tolerance float64) *Comment {
	for _, c := range comments {
		if math.Abs(c.Timestamp-currentTime) < tolerance {
			return c
		}
	}
	return nil
}

// ByVideo 过滤出指定视频的批注并按时间戳升序排列
// 标题不存在时返回空切片，悬空引用不视为错误
func ByVideo(comments []*Comment, videoTitle string) []*Comment {
	out := make([]*Comment, 0, len(comments))
	for _, c := range comments {
		if c.VideoTitle == videoTitle {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}
