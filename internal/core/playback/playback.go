// Package playback 管理播放端状态：多视频播放状态存储、批注时间轴索引、
// 多视频同步与批注生命周期编排。不依赖任何渲染层，渲染面只读写这里的状态。
package playback

import "time"

// Config 播放端调参
// 活跃批注容差与外部 seek 阈值为经验值，与采样间隔、网络延迟相关，
// 不做硬编码，部署侧按需调整
type Config struct {
	TickInterval   time.Duration // 播放进度采样间隔
	Tolerance      float64       // 活跃批注判定容差(秒)
	SeekThreshold  float64       // 外部 seek 写回阈值(秒)，小于阈值的偏差交给自然播放
	RefreshRetries int           // 聚合刷新重试次数，仅幂等读操作重试
	RefreshBackoff time.Duration // 刷新重试退避基数
}

func (c *Config) setDefaults() {
	if c.TickInterval <= 0 {
		c.TickInterval = 100 * time.Millisecond
	}
	if c.Tolerance <= 0 {
		c.Tolerance = 2
	}
	if c.SeekThreshold <= 0 {
		c.SeekThreshold = 0.5
	}
	if c.RefreshRetries <= 0 {
		c.RefreshRetries = 3
	}
	if c.RefreshBackoff <= 0 {
		c.RefreshBackoff = 200 * time.Millisecond
	}
}

// SessionInfo 会话基础信息
type SessionInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Video 会话内的视频
type Video struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"video_file"`
	Duration    float64 `json:"duration"`
}

// Comment 时间码批注
type Comment struct {
	Name        string  `json:"name"`
	Doctor      string  `json:"doctor"`
	DoctorName  string  `json:"doctor_name"`
	VideoTitle  string  `json:"video_title"`
	Timestamp   float64 `json:"timestamp"`
	Duration    int     `json:"duration"`
	CommentType string  `json:"comment_type"`
	CommentText string  `json:"comment_text"`
	CreatedAt   string  `json:"created_at"`
}

// SessionDetail 会话详情聚合，服务端一次性返回
type SessionDetail struct {
	Session  SessionInfo `json:"session"`
	Videos   []*Video    `json:"videos"`
	Comments []*Comment  `json:"comments"`
}
