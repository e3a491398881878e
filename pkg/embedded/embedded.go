// Package embedded 提供嵌入数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在 data 包中，桌面端和移动端入口都用它调用 Init()。
// 本包提供包装函数，让 config 等包可以按 "data/..." 路径读取嵌入的配置。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu          sync.RWMutex
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// data 以 data/ 目录为根，"data/rain.yaml" 对应其中的 "rain.yaml"
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return initialized
}

// normalize 标准化路径、检查前缀并转换为数据文件系统内的路径
func normalize(path string) (string, error) {
	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return strings.TrimPrefix(path, "data/"), nil
}

// Open 打开嵌入的数据文件
// 路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取嵌入的数据文件内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入数据中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
