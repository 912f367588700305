package playback

import "github.com/ixugo/goddd/pkg/reason"

// Layout 播放布局模式，决定同步的活跃视频集合
type Layout string

const (
	LayoutSingle     Layout = "single"
	LayoutSideBySide Layout = "side-by-side"
	LayoutGrid       Layout = "grid"
)

// ActiveVideos 按布局模式圈定活跃视频
// 单视频模式下同步无意义，返回空集
func ActiveVideos(layout Layout, titles []string) []string {
	switch layout {
	case LayoutSideBySide:
		if len(titles) > 2 {
			titles = titles[:2]
		}
		return titles
	case LayoutGrid:
		return titles
	default:
		return nil
	}
}

// Synchronizer 多视频一次性同步
// 只做快照式 seek，不追赶播放速率漂移
type Synchronizer struct {
	store *Store
}

func NewSynchronizer(store *Store) Synchronizer {
	return Synchronizer{store: store}
}

// Sync 把基准视频的播放位置推到其余活跃视频，返回同步条数
// 活跃视频不足两个时报错且不产生任何写入
func (s Synchronizer) Sync(reference string, active []string) (int, error) {
	if len(active) < 2 {
		return 0, reason.ErrBadRequest.SetMsg("至少需要两个活跃视频才能同步")
	}
	ref := s.store.Snapshot(reference).CurrentTime
	count := 0
	for _, title := range active {
		if title == reference {
			continue
		}
		s.store.SetTime(title, ref)
		count++
	}
	return count, nil
}
