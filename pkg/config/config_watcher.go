package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher 监听单个玩法配置文件的变更（开发期热重载用）
//
// fsnotify 监听的是文件所在目录：编辑器保存常用"写临时文件再改名"
// 的方式，直接监听文件会在第一次改名后失效
//
// Events 通道在目标文件被写入/创建/改名后收到一次通知（100ms 去抖），
// 场景在每帧 Update 里非阻塞地轮询该通道并触发重新加载
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	target  string

	Events chan struct{}
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

// NewConfigWatcher 创建并启动配置文件监听
func NewConfigWatcher(configPath string) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(configPath)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher: w,
		target:  filepath.Clean(configPath),
		Events:  make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close 停止监听并释放资源，重复调用安全
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}

func (cw *ConfigWatcher) run() {
	var lastEvent time.Time
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.target {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < 100*time.Millisecond {
				continue
			}
			lastEvent = now

			// 通道已有未消费的通知时直接丢弃本次
			select {
			case cw.Events <- struct{}{}:
			default:
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case cw.Errors <- err:
			default:
			}
		case <-cw.closeCh:
			return
		}
	}
}
