package playback

import (
	"math"
	"sync"
)

// State 单个视频的播放状态快照
type State struct {
	IsPlaying   bool
	CurrentTime float64
	Draft       string // 批注草稿，提交成功前属于播放状态的一部分
}

// Store 多视频播放状态存储
// 任意写操作对未知视频自动建立默认条目 {暂停, 0, 空草稿}，
// 同一视频不会出现第二个条目
type Store struct {
	cfg Config

	mu        sync.RWMutex
	entries   map[string]*State
	durations map[string]float64
}

func NewStore(cfg Config) *Store {
	cfg.setDefaults()
	return &Store{
		cfg:       cfg,
		entries:   make(map[string]*State),
		durations: make(map[string]float64),
	}
}

// ensure 建立默认条目，调用方须持有写锁
func (s *Store) ensure(title string) *State {
	st, ok := s.entries[title]
	if !ok {
		st = &State{}
		s.entries[title] = st
	}
	return st
}

// Touch 为视频建立默认条目，已存在时不做任何修改
func (s *Store) Touch(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(title)
}

// SetPlaying 记录播放/暂停
func (s *Store) SetPlaying(title string, playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(title).IsPlaying = playing
}

// SetTime 记录播放位置，越界值钳制到 [0, 时长]
// 时长未知时仅做下界钳制
func (s *Store) SetTime(title string, seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(title).CurrentTime = s.clamp(title, seconds)
}

// SetDraft 覆盖草稿
func (s *Store) SetDraft(title, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(title).Draft = text
}

// AppendDraft 追加草稿，不覆盖已有内容
func (s *Store) AppendDraft(title, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensure(title)
	if st.Draft == "" {
		st.Draft = text
		return
	}
	st.Draft += " " + text
}

// SetDuration 记录视频时长，只写一次，后续调用忽略
// 已越界的播放位置随之钳回
func (s *Store) SetDuration(title string, seconds float64) {
	if seconds <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.durations[title]; ok {
		return
	}
	s.durations[title] = seconds
	if st, ok := s.entries[title]; ok {
		st.CurrentTime = s.clamp(title, st.CurrentTime)
	}
}

// Duration 查询已知时长
func (s *Store) Duration(title string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.durations[title]
	return d, ok
}

// Clamp 将时间点钳制到 [0, 时长]，时长未知时仅做下界钳制
func (s *Store) Clamp(title string, seconds float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clamp(title, seconds)
}

// Snapshot 返回状态副本，未知视频返回零值且不建立条目
func (s *Store) Snapshot(title string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.entries[title]; ok {
		return *st
	}
	return State{}
}

// ShouldSeek 判断外部播放面位置与存储位置的偏差是否需要写回 seek
func (s *Store) ShouldSeek(title string, surfacePos float64) bool {
	return math.Abs(s.Snapshot(title).CurrentTime-surfacePos) > s.cfg.SeekThreshold
}

// Titles 当前持有状态的视频标题
func (s *Store) Titles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.entries))
	for title := range s.entries {
		out = append(out, title)
	}
	return out
}

// Len 条目数
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) clamp(title string, seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	if d, ok := s.durations[title]; ok && seconds > d {
		return d
	}
	return seconds
}
