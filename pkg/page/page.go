// Package page 构建承载雨滴动画的页面
//
// Build 生成与平台无关的元素树（标题、姓名、链接区和 <canvas>），
// Mount（仅 js/wasm）将其挂载到 DOM。页面组装完成后通过 Ready 通知
// 动画子系统启动，取代固定延时。
package page

import (
	"github.com/decker502/rain/pkg/config"
)

// Attr 元素属性，保持声明顺序
type Attr struct {
	Name  string
	Value string
}

// Node 页面元素
type Node struct {
	Tag      string
	ID       string
	Class    string
	Text     string // 作为第一个文本子节点
	Attrs    []Attr
	Children []*Node
}

// Page 待挂载的页面
type Page struct {
	Title string
	Body  []*Node // 依次追加到 <body>
}

// Build 根据配置生成页面元素树
//
// 结构：
//
//	div.main
//	  h1.header-tom  "Tom " + span.header-jones "Jones"
//	  div.link-box   span.blue > a, span.spacer, span.blue > a ...
//	canvas#<canvasID>
func Build(cfg config.PageConfig, canvasID string) *Page {
	heading := &Node{
		Tag:   "h1",
		Class: "header-tom",
		Text:  cfg.Heading.First,
		Children: []*Node{
			{Tag: "span", Class: "header-jones", Text: cfg.Heading.Last},
		},
	}

	linkBox := &Node{Tag: "div", Class: "link-box"}
	for i, link := range cfg.Links {
		if i > 0 {
			linkBox.Children = append(linkBox.Children, &Node{Tag: "span", Class: "spacer", Text: cfg.Separator})
		}
		linkBox.Children = append(linkBox.Children, &Node{
			Tag:   "span",
			Class: "blue",
			Children: []*Node{{
				Tag:  "a",
				Text: link.Label,
				Attrs: []Attr{
					{Name: "href", Value: link.Href},
					{Name: "target", Value: "_blank"},
				},
			}},
		})
	}

	return &Page{
		Title: cfg.Title,
		Body: []*Node{
			{Tag: "div", Class: "main", Children: []*Node{heading, linkBox}},
			{Tag: "canvas", ID: canvasID},
		},
	}
}

// Find 深度优先查找指定 id 的元素
func (p *Page) Find(id string) *Node {
	for _, n := range p.Body {
		if found := n.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Find 在子树中查找指定 id 的元素
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk 深度优先遍历子树
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
