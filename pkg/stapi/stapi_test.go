package stapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surgtrain/scrub/internal/core/annotation"
	"github.com/surgtrain/scrub/internal/core/session"
)

func TestUnwrapDirectEnvelope(t *testing.T) {
	body := []byte(`{"message":"Success","data":{"name":"vc1","timestamp":10.5}}`)
	var out Comment
	require.NoError(t, unwrap(body, &out))
	assert.Equal(t, "vc1", out.Name)
	assert.Equal(t, 10.5, out.Timestamp)
}

func TestUnwrapDoubleWrapped(t *testing.T) {
	body := []byte(`{"message":{"message":"Success","data":{"name":"vc2"}}}`)
	var out Comment
	require.NoError(t, unwrap(body, &out))
	assert.Equal(t, "vc2", out.Name)
}

func TestUnwrapErrorEnvelope(t *testing.T) {
	err := unwrap([]byte(`{"error":"批注不存在"}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "批注不存在")
}

func TestGetSessionDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sessions/se123/details", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"message":"Success","data":{
			"session":{"name":"se123","title":"胆囊切除教学"},
			"videos":[{"title":"Intro","duration":120}],
			"comments":[{"name":"vc1","video_title":"Intro","timestamp":10}]
		}}`))
	}))
	defer srv.Close()

	e := NewEngine().SetConfig(Config{URL: srv.URL, Token: func() string { return "tok" }})
	out, err := e.GetSessionDetails(context.Background(), "se123")
	require.NoError(t, err)
	assert.Equal(t, "胆囊切除教学", out.Session.Title)
	require.Len(t, out.Videos, 1)
	assert.Equal(t, 120.0, out.Videos[0].Duration)
	require.Len(t, out.Comments, 1)
}

// 服务端领域模型序列化后必须能被客户端还原，尤其是主键字段
func TestSessionDetailRoundTrip(t *testing.T) {
	body, err := json.Marshal(map[string]any{
		"message": "Success",
		"data": map[string]any{
			"session": &session.Session{ID: "se123", Title: "胆囊切除教学", Status: "Active"},
			"videos":  []*session.Video{{ID: "sv1", Title: "Intro", VideoFile: "intro.mp4", Duration: 120}},
			"comments": []*annotation.Comment{
				{ID: "vc1", SessionID: "se123", Doctor: "dr.wang", VideoTitle: "Intro", Timestamp: 10.5, Duration: 30},
			},
		},
	})
	require.NoError(t, err)

	var out SessionDetail
	require.NoError(t, unwrap(body, &out))
	assert.Equal(t, "se123", out.Session.Name)
	assert.Equal(t, "Active", out.Session.Status)
	require.Len(t, out.Videos, 1)
	assert.Equal(t, 120.0, out.Videos[0].Duration)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, "vc1", out.Comments[0].Name)
	assert.Equal(t, "dr.wang", out.Comments[0].Doctor)
}

func TestAddCommentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"批注内容不能为空"}`))
	}))
	defer srv.Close()

	e := NewEngine().SetConfig(Config{URL: srv.URL})
	err := e.AddComment(context.Background(), &AddCommentInput{Session: "se123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "批注内容不能为空")
}

func TestDeleteComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/comments/vc1", r.URL.Path)
		w.Write([]byte(`{"message":"Success"}`))
	}))
	defer srv.Close()

	e := NewEngine().SetConfig(Config{URL: srv.URL})
	require.NoError(t, e.DeleteComment(context.Background(), "vc1"))
}
