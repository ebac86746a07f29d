package enums

// Effectiveness 处理方案的效果评价
type Effectiveness string

const (
	EffectivenessHigh   Effectiveness = "high"
	EffectivenessMedium Effectiveness = "medium"
	EffectivenessLow    Effectiveness = "low"
)
