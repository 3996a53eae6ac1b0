package config

// InsetStep 每次编辑调整的内缩量
const InsetStep = 0.01

// EditAction 交互式调整网格配置的动作
type EditAction int

const (
	EditInsetDecrease EditAction = iota
	EditInsetIncrease
	EditWidthDecrease
	EditWidthIncrease
	EditHeightDecrease
	EditHeightIncrease
)

// Apply 返回应用编辑动作后的配置
// 不做校验：无效值照常返回，由几何系统拒绝并保留上一次的网格
func (c GridConfig) Apply(action EditAction) GridConfig {
	switch action {
	case EditInsetDecrease:
		c.BorderInset -= InsetStep
	case EditInsetIncrease:
		c.BorderInset += InsetStep
	case EditWidthDecrease:
		c.Width--
	case EditWidthIncrease:
		c.Width++
	case EditHeightDecrease:
		c.Height--
	case EditHeightIncrease:
		c.Height++
	}
	return c
}
