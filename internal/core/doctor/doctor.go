package doctor

import (
	"context"

	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
	"github.com/surgtrain/scrub/internal/core/bz"
)

// Doctor 医生档案，user 为登录账号标识
type Doctor struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	User      string   `gorm:"column:user;uniqueIndex" json:"user"`
	FullName  string   `gorm:"column:full_name" json:"full_name"`
	Title     string   `gorm:"column:title" json:"title"` // 职称
	CreatedAt orm.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt orm.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (*Doctor) TableName() string {
	return "doctors"
}

// Storer data persistence
type Storer interface {
	Find(context.Context, *[]*Doctor, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Doctor, ...orm.QueryOption) error
	Add(context.Context, *Doctor) error
	Edit(context.Context, *Doctor, func(*Doctor), ...orm.QueryOption) error
	Del(context.Context, *Doctor, ...orm.QueryOption) error
}

// Core business domain
type Core struct {
	store Storer
	uni   uniqueid.Core
}

func NewCore(store Storer, uni uniqueid.Core) Core {
	return Core{store: store, uni: uni}
}

type FindDoctorsInput struct {
	web.PagerFilter
	Keyword string `form:"keyword"` // 按姓名模糊查询
}

// FindDoctors 分页查询医生
func (c Core) FindDoctors(ctx context.Context, in *FindDoctorsInput) ([]*Doctor, int64, error) {
	query := orm.NewQuery(1).OrderBy("created_at ASC")
	if in.Keyword != "" {
		query.Where("full_name LIKE ?", "%"+in.Keyword+"%")
	}
	items := make([]*Doctor, 0, in.Limit())
	total, err := c.store.Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// EnsureDoctor 按账号取医生档案，不存在则创建占位档案
// 管理员或医师首次发表批注时自动建档，与旧系统行为一致
func (c Core) EnsureDoctor(ctx context.Context, user, fullName string) (*Doctor, error) {
	var out Doctor
	err := c.store.Get(ctx, &out, orm.Where("\"user\"=?", user))
	if err == nil {
		return &out, nil
	}
	if !orm.IsErrRecordNotFound(err) {
		return nil, reason.ErrDB.Withf(`Get user[%s] err[%s]`, user, err.Error())
	}

	if fullName == "" {
		fullName = user
	}
	out = Doctor{
		ID:        c.uni.UniqueID(bz.IDPrefixDoctor),
		User:      user,
		FullName:  fullName,
		CreatedAt: orm.Now(),
		UpdatedAt: orm.Now(),
	}
	if err := c.store.Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add user[%s] err[%s]`, user, err.Error())
	}
	return &out, nil
}

// DoctorName 查询医生展示名，供批注域填充作者名
func (c Core) DoctorName(ctx context.Context, user string) (string, error) {
	var out Doctor
	if err := c.store.Get(ctx, &out, orm.Where("\"user\"=?", user)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return user, nil
		}
		return "", err
	}
	return out.FullName, nil
}
