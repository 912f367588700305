package playback

import (
	"sync"
	"time"
)

// ActiveFunc 活跃批注变更回调，批注离开容差窗口时以 nil 通知
type ActiveFunc func(videoTitle string, c *Comment)

// Monitor 播放进度采样器
// 轮询而非事件订阅：定期读取播放位置并判定处于容差窗口内的批注，
// 驱动批注浮层随播放进度更新
type Monitor struct {
	store    *Store
	cfg      Config
	onActive ActiveFunc

	quit chan struct{}
	once sync.Once
}

func NewMonitor(store *Store, cfg Config, fn ActiveFunc) *Monitor {
	cfg.setDefaults()
	return &Monitor{
		store:    store,
		cfg:      cfg,
		onActive: fn,
		quit:     make(chan struct{}, 1),
	}
}

// Watch 监视指定视频，comments 每次采样重新取值，
// 聚合刷新后的批注列表无需重新订阅即可生效
func (m *Monitor) Watch(videoTitle string, comments func() []*Comment) {
	go m.tickCheck(videoTitle, comments)
}

func (m *Monitor) Close() {
	m.once.Do(func() {
		close(m.quit)
	})
}

// tickCheck 定时采样播放位置并判定活跃批注
func (m *Monitor) tickCheck(videoTitle string, comments func() []*Comment) {
	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()

	var last string
	for {
		select {
		case <-m.quit:
			return
		case <-ticker.C:
			snap := m.store.Snapshot(videoTitle)
			if !snap.IsPlaying {
				continue
			}
			active := ActiveAt(ByVideo(comments(), videoTitle), snap.CurrentTime, m.cfg.Tolerance)

			name := ""
			if active != nil {
				name = active.Name
			}
			if name == last {
				continue
			}
			last = name
			if m.onActive != nil {
				m.onActive(videoTitle, active)
			}
		}
	}
}
