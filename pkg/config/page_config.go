package config

// PageConfig 页面内容配置
// wasm 宿主据此构建标题、姓名和链接区
type PageConfig struct {
	Title     string        `yaml:"title"`
	Heading   HeadingConfig `yaml:"heading"`
	Separator string        `yaml:"separator"` // 链接之间的分隔符
	Links     []LinkConfig  `yaml:"links"`
}

// HeadingConfig 页面标题的两段文字，第二段单独着色
type HeadingConfig struct {
	First string `yaml:"first"`
	Last  string `yaml:"last"`
}

// LinkConfig 外部链接
type LinkConfig struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// DefaultPageConfig 返回默认页面内容
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Title:     "Tom Jones",
		Heading:   HeadingConfig{First: "Tom ", Last: "Jones"},
		Separator: "//",
		Links: []LinkConfig{
			{Label: "Github", Href: "https://github.com/lostVkng"},
			{Label: "Twitter", Href: "https://twitter.com/tomjonesiv"},
		},
	}
}
