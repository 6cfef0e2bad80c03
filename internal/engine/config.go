package engine

// Config carries the layout spacing options. The zero value is not useful;
// start from DefaultConfig and override fields as needed.
type Config struct {
	HorizontalSpacing float64 `json:"horizontalSpacing"` // gap between sibling subtrees, top-down styles
	VerticalSpacing   float64 `json:"verticalSpacing"`   // gap between siblings, radial/left-right styles
	LevelSpacing      float64 `json:"levelSpacing"`      // distance between successive depth levels
	NodeWidth         float64 `json:"nodeWidth"`         // base node box width before per-style scaling
	NodeHeight        float64 `json:"nodeHeight"`        // base node box height before per-style scaling
	CenterX           float64 `json:"centerX"`           // world-space anchor for the root
	CenterY           float64 `json:"centerY"`
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		HorizontalSpacing: 40,
		VerticalSpacing:   20,
		LevelSpacing:      200,
		NodeWidth:         120,
		NodeHeight:        40,
		CenterX:           600,
		CenterY:           400,
	}
}

// ConfigOverrides is a partial configuration; nil fields keep the default.
type ConfigOverrides struct {
	HorizontalSpacing *float64 `json:"horizontalSpacing,omitempty"`
	VerticalSpacing   *float64 `json:"verticalSpacing,omitempty"`
	LevelSpacing      *float64 `json:"levelSpacing,omitempty"`
	NodeWidth         *float64 `json:"nodeWidth,omitempty"`
	NodeHeight        *float64 `json:"nodeHeight,omitempty"`
	CenterX           *float64 `json:"centerX,omitempty"`
	CenterY           *float64 `json:"centerY,omitempty"`
}

// Apply returns a copy of cfg with the non-nil overrides applied.
func (o ConfigOverrides) Apply(cfg Config) Config {
	if o.HorizontalSpacing != nil {
		cfg.HorizontalSpacing = *o.HorizontalSpacing
	}
	if o.VerticalSpacing != nil {
		cfg.VerticalSpacing = *o.VerticalSpacing
	}
	if o.LevelSpacing != nil {
		cfg.LevelSpacing = *o.LevelSpacing
	}
	if o.NodeWidth != nil {
		cfg.NodeWidth = *o.NodeWidth
	}
	if o.NodeHeight != nil {
		cfg.NodeHeight = *o.NodeHeight
	}
	if o.CenterX != nil {
		cfg.CenterX = *o.CenterX
	}
	if o.CenterY != nil {
		cfg.CenterY = *o.CenterY
	}
	return cfg
}
