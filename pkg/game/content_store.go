package game

import (
	"fmt"
	"log"

	"github.com/decker502/reportdeck/pkg/config"
	"golang.org/x/sync/errgroup"
)

// ContentStore 按语言索引的内容包集合
// 加载后只读；切换语言时整体替换内容对象
type ContentStore struct {
	bundles map[Language]*config.ContentData
}

// LoadContentStore 并行加载并校验所有语言的内容包
// 任意一个内容包失败都会返回错误（错误信息包含语言与字段路径）
func LoadContentStore() (*ContentStore, error) {
	results := make([]*config.ContentData, len(Languages))

	var g errgroup.Group
	for i, lang := range Languages {
		g.Go(func() error {
			content, err := config.LoadContent(lang.BundlePath())
			if err != nil {
				return fmt.Errorf("language %s: %w", lang, err)
			}
			results[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	store := &ContentStore{bundles: make(map[Language]*config.ContentData, len(Languages))}
	for i, lang := range Languages {
		store.bundles[lang] = results[i]
	}
	log.Printf("[ContentStore] Loaded %d content bundles", len(store.bundles))
	return store, nil
}

// NewContentStore 由已加载的内容对象构建（测试与工具使用）
func NewContentStore(bundles map[Language]*config.ContentData) (*ContentStore, error) {
	for _, lang := range Languages {
		if bundles[lang] == nil {
			return nil, fmt.Errorf("missing content bundle for language %s", lang)
		}
	}
	return &ContentStore{bundles: bundles}, nil
}

// Get 返回指定语言的内容对象
func (s *ContentStore) Get(lang Language) *config.ContentData {
	return s.bundles[lang]
}
