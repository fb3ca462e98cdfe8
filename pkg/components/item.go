package components

// ItemKind 设计道具种类
type ItemKind int

const (
	ItemKindPen     ItemKind = iota // 钢笔
	ItemKindPalette                 // 调色板
	ItemKindLayers                  // 图层
)

// ItemComponent 可收集的设计道具
type ItemComponent struct {
	Kind      ItemKind
	Collected bool
}
