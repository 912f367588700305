// Package stapi 批注服务端 HTTP 客户端
package stapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	URL   string
	Token func() string // 鉴权令牌访问器，可为 nil
}

type Engine struct {
	cfg Config
	cli *http.Client
}

func NewEngine() Engine {
	return Engine{
		cli: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        30,
				MaxIdleConnsPerHost: 30,
				MaxConnsPerHost:     100,
			},
		},
	}
}

func (e Engine) SetConfig(cfg Config) Engine {
	e.cfg = cfg
	return e
}

// envelope 服务端响应信封
// 成功时 message 为 "Success"，部分传输层会再包一层，
// message 本身又是一个完整信封，两种形态都要兼容
type envelope struct {
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// unwrap 解出 data 部分，最多解一层嵌套
func unwrap(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if env.Error != "" {
		return fmt.Errorf("服务端错误: %s", env.Error)
	}

	var msg string
	if err := json.Unmarshal(env.Message, &msg); err == nil {
		if msg != "Success" {
			return fmt.Errorf("非预期响应: %s", msg)
		}
		if out == nil || len(env.Data) == 0 {
			return nil
		}
		return json.Unmarshal(env.Data, out)
	}

	// message 是对象，按双层信封处理
	var inner envelope
	if err := json.Unmarshal(env.Message, &inner); err != nil {
		return fmt.Errorf("无法识别的响应格式")
	}
	return unwrap(env.Message, out)
}

func (e *Engine) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, e.cfg.URL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.Token != nil {
		if token := e.cfg.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := e.cli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return err
	}
	return unwrap(buf.Bytes(), out)
}

func (e *Engine) get(ctx context.Context, path string, out any) error {
	return e.do(ctx, http.MethodGet, path, nil, out)
}

func (e *Engine) post(ctx context.Context, path string, in, out any) error {
	return e.do(ctx, http.MethodPost, path, in, out)
}

func (e *Engine) put(ctx context.Context, path string, in, out any) error {
	return e.do(ctx, http.MethodPut, path, in, out)
}

func (e *Engine) delete(ctx context.Context, path string) error {
	return e.do(ctx, http.MethodDelete, path, nil, nil)
}
