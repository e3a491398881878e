// Package data 嵌入随程序发布的配置文件
//
// 桌面端（main.go）和移动端（mobile/）都把 FS 传给 embedded.Init()，
// 这样两端读取的是同一份 data/rain.yaml。
package data

import "embed"

// FS 以 data/ 目录为根
//
//go:embed rain.yaml
var FS embed.FS
