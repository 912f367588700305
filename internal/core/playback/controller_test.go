package playback

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	detail *SessionDetail

	getCalls    atomic.Int32
	addCalls    atomic.Int32
	getFailures int32
	addErr      error
	deleteErr   error

	blockDelete chan struct{}

	mu      sync.Mutex
	lastAdd *AddCommentInput
}

func (f *fakeClient) GetSessionDetails(_ context.Context, _ string) (*SessionDetail, error) {
	n := f.getCalls.Add(1)
	if n <= f.getFailures {
		return nil, errors.New("connection refused")
	}
	return f.detail, nil
}

func (f *fakeClient) AddComment(_ context.Context, in *AddCommentInput) error {
	f.addCalls.Add(1)
	f.mu.Lock()
	f.lastAdd = in
	f.mu.Unlock()
	return f.addErr
}

func (f *fakeClient) lastAddInput() *AddCommentInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAdd
}

func (f *fakeClient) UpdateCommentText(_ context.Context, _, _ string) error { return nil }

func (f *fakeClient) UpdateCommentDuration(_ context.Context, _ string, _ int) error { return nil }

func (f *fakeClient) DeleteComment(_ context.Context, _ string) error {
	if f.blockDelete != nil {
		<-f.blockDelete
	}
	return f.deleteErr
}

func testDetail() *SessionDetail {
	return &SessionDetail{
		Session: SessionInfo{Name: "se123", Title: "胆囊切除教学", Status: "Active"},
		Videos: []*Video{
			{Title: "Intro", Duration: 120},
		},
		Comments: []*Comment{
			{Name: "vc1", VideoTitle: "Intro", Timestamp: 10, CommentText: "注意牵引角度"},
			{Name: "vc2", VideoTitle: "Intro", Timestamp: 115, CommentText: "收尾"},
		},
	}
}

func newTestController(api SessionClient) (*Controller, *Store) {
	store := NewStore(Config{})
	cfg := Config{RefreshBackoff: time.Millisecond}
	return NewController(api, store, cfg, "se123"), store
}

func TestControllerLoadSeedsStore(t *testing.T) {
	c, store := newTestController(&fakeClient{detail: testDetail()})
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, 1, store.Len())
	d, ok := store.Duration("Intro")
	require.True(t, ok)
	assert.Equal(t, 120.0, d)
	assert.Len(t, c.Comments(), 2)
}

func TestControllerAddRestoresPosition(t *testing.T) {
	api := &fakeClient{detail: testDetail()}
	c, store := newTestController(api)
	require.NoError(t, c.Load(context.Background()))

	store.SetTime("Intro", 42)
	store.SetPlaying("Intro", true)
	store.SetDraft("Intro", "出血点处理不及时")

	require.NoError(t, c.Add(context.Background(), "Intro", 42, "出血点处理不及时", 0, ""))

	st := store.Snapshot("Intro")
	assert.Equal(t, 42.0, st.CurrentTime)
	assert.False(t, st.IsPlaying)
	assert.Empty(t, st.Draft)
	assert.Equal(t, int32(1), api.addCalls.Load())
}

func TestControllerAddClampsTimestamp(t *testing.T) {
	api := &fakeClient{detail: testDetail()}
	c, _ := newTestController(api)
	require.NoError(t, c.Load(context.Background()))

	// 拖动条回弹等场景会产生负时间点
	require.NoError(t, c.Add(context.Background(), "Intro", -5, "开场前", 0, ""))
	in := api.lastAddInput()
	require.NotNil(t, in)
	assert.Equal(t, 0.0, in.Timestamp)

	// 超出视频时长时钳到时长
	require.NoError(t, c.Add(context.Background(), "Intro", 500, "片尾", 0, ""))
	assert.Equal(t, 120.0, api.lastAddInput().Timestamp)
}

func TestControllerAddEmptyTextIsNoop(t *testing.T) {
	api := &fakeClient{detail: testDetail()}
	c, _ := newTestController(api)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Add(context.Background(), "Intro", 10, "   ", 0, ""))
	assert.Equal(t, int32(0), api.addCalls.Load())
}

func TestControllerAddFailureKeepsDraftAndPosition(t *testing.T) {
	api := &fakeClient{detail: testDetail(), addErr: errors.New("500")}
	c, store := newTestController(api)
	require.NoError(t, c.Load(context.Background()))

	store.SetTime("Intro", 42)
	store.SetDraft("Intro", "草稿")

	require.Error(t, c.Add(context.Background(), "Intro", 42, "草稿", 0, ""))

	st := store.Snapshot("Intro")
	assert.Equal(t, 42.0, st.CurrentTime)
	assert.Equal(t, "草稿", st.Draft)
}

func TestControllerMutateUnknownComment(t *testing.T) {
	c, _ := newTestController(&fakeClient{detail: testDetail()})
	require.NoError(t, c.Load(context.Background()))

	err := c.Remove(context.Background(), "vc999")
	require.Error(t, err)
}

func TestControllerInflightGuard(t *testing.T) {
	api := &fakeClient{detail: testDetail(), blockDelete: make(chan struct{})}
	c, _ := newTestController(api)
	require.NoError(t, c.Load(context.Background()))

	done := make(chan error, 1)
	go func() {
		done <- c.Remove(context.Background(), "vc1")
	}()

	// 等删除进入在途状态
	require.Eventually(t, func() bool {
		_, ok := c.inflight.Load("vc1")
		return ok
	}, time.Second, time.Millisecond)

	// 同一批注的第二个变更被拒绝
	err := c.UpdateText(context.Background(), "vc1", "改文本")
	require.Error(t, err)

	close(api.blockDelete)
	require.NoError(t, <-done)
}

func TestControllerRefreshRetriesReads(t *testing.T) {
	api := &fakeClient{detail: testDetail(), getFailures: 2}
	c, _ := newTestController(api)

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, int32(3), api.getCalls.Load())
}

func TestControllerRefreshGivesUp(t *testing.T) {
	api := &fakeClient{detail: testDetail(), getFailures: 99}
	c, _ := newTestController(api)

	require.Error(t, c.Load(context.Background()))
	assert.Equal(t, int32(3), api.getCalls.Load())
}
