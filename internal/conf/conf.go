package conf

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration 支持 toml 中以 "30s"、"5m" 形式配置时长
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Bootstrap 全局配置
type Bootstrap struct {
	BuildVersion string `toml:"-"`
	ConfigPath   string `toml:"-"`

	Server Server `toml:"server"`
	Data   Data   `toml:"data"`
	Log    Log    `toml:"log"`
}

type Server struct {
	Debug    bool   `toml:"debug"`
	Username string `toml:"username"` // 管理员账号
	Password string `toml:"password"`

	HTTP     HTTP     `toml:"http"`
	RPC      RPC      `toml:"rpc"`
	Playback Playback `toml:"playback"`
}

type HTTP struct {
	Port      int    `toml:"port"`
	JwtSecret string `toml:"jwt_secret"`
	PProf     PProf  `toml:"pprof"`
}

type PProf struct {
	Enabled   bool     `toml:"enabled"`
	AccessIps []string `toml:"access_ips"`
}

type RPC struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

// Playback 播放端调参，客户端启动时从服务端拉取
// 活跃批注容差与外部 seek 阈值为经验值，与轮询间隔/网络延迟相关，故做成配置
type Playback struct {
	TickInterval  Duration `toml:"tick_interval"`      // 播放进度采样间隔
	Tolerance     float64  `toml:"tolerance_sec"`      // 活跃批注判定容差(秒)
	SeekThreshold float64  `toml:"seek_threshold_sec"` // 外部 seek 写回阈值(秒)
}

type Data struct {
	Database Database `toml:"database"`
}

type Database struct {
	Dsn             string   `toml:"dsn"`
	MaxIdleConns    int64    `toml:"max_idle_conns"`
	MaxOpenConns    int64    `toml:"max_open_conns"`
	ConnMaxLifetime Duration `toml:"conn_max_lifetime"`
	SlowThreshold   Duration `toml:"slow_threshold"`
}

type Log struct {
	Dir    string   `toml:"dir"`
	Level  string   `toml:"level"`
	MaxAge Duration `toml:"max_age"`
}

// SetupConfig 读取配置文件，不存在时写入默认配置
func SetupConfig(path string) (*Bootstrap, error) {
	c := defaultBootstrap()
	c.ConfigPath = path

	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err := WriteConfig(c, path); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	c.fillDefault()
	return c, nil
}

// WriteConfig 将配置写回文件，凭据修改后调用
func WriteConfig(c *Bootstrap, path string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func defaultBootstrap() *Bootstrap {
	c := Bootstrap{
		Server: Server{
			HTTP: HTTP{Port: 8080},
			RPC:  RPC{Port: 50051},
		},
		Data: Data{
			Database: Database{
				Dsn:             "scrub.db",
				MaxIdleConns:    10,
				MaxOpenConns:    100,
				ConnMaxLifetime: Duration(6 * time.Hour),
				SlowThreshold:   Duration(500 * time.Millisecond),
			},
		},
		Log: Log{
			Dir:    "logs",
			Level:  "info",
			MaxAge: Duration(7 * 24 * time.Hour),
		},
	}
	c.fillDefault()
	return &c
}

func (c *Bootstrap) fillDefault() {
	p := &c.Server.Playback
	if p.TickInterval <= 0 {
		p.TickInterval = Duration(100 * time.Millisecond)
	}
	if p.Tolerance <= 0 {
		p.Tolerance = 2
	}
	if p.SeekThreshold <= 0 {
		p.SeekThreshold = 0.5
	}
	d := &c.Data.Database
	if d.Dsn == "" {
		d.Dsn = "scrub.db"
	}
	if d.MaxIdleConns <= 0 {
		d.MaxIdleConns = 10
	}
	if d.MaxOpenConns <= 0 {
		d.MaxOpenConns = 100
	}
}
