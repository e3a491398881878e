package page

import (
	"context"
	"sync"
)

// Ready 一次性完成信号
// 页面组装方调用 Complete，动画子系统等待 Done 后检查 Err
type Ready struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewReady 创建未完成的信号
func NewReady() *Ready {
	return &Ready{done: make(chan struct{})}
}

// Complete 标记完成，err 非 nil 表示页面组装失败
// 只有第一次调用生效
func (r *Ready) Complete(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Done 在完成后关闭
func (r *Ready) Done() <-chan struct{} {
	return r.done
}

// Err 返回组装结果，未完成时返回 nil
func (r *Ready) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Wait 阻塞到完成或 ctx 取消
func (r *Ready) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
