//go:build js && wasm

package page

import (
	"fmt"
	"log"
	"syscall/js"
)

// Mount 设置文档标题并把页面元素追加到 <body>
// DOM 调用抛出的 JS 异常转换为错误返回
func Mount(p *Page) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mount page: %v", r)
		}
	}()

	document := js.Global().Get("document")
	if !document.Truthy() {
		return fmt.Errorf("mount page: no document")
	}
	body := document.Get("body")
	if !body.Truthy() {
		return fmt.Errorf("mount page: document has no body")
	}

	document.Set("title", p.Title)
	for _, n := range p.Body {
		body.Call("appendChild", create(document, n))
	}

	log.Printf("[Page] Mounted %q", p.Title)
	return nil
}

func create(document js.Value, n *Node) js.Value {
	el := document.Call("createElement", n.Tag)
	if n.ID != "" {
		el.Set("id", n.ID)
	}
	if n.Class != "" {
		el.Set("className", n.Class)
	}
	for _, a := range n.Attrs {
		el.Call("setAttribute", a.Name, a.Value)
	}
	if n.Text != "" {
		el.Call("appendChild", document.Call("createTextNode", n.Text))
	}
	for _, c := range n.Children {
		el.Call("appendChild", create(document, c))
	}
	return el
}
