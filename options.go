package pge

// Option configures a Rasterizer during creation.
//
// Example:
//
//	// Default: a fresh primary sprite, Normal blending, factor 1
//	r, err := pge.NewRasterizer(256, 240)
//
//	// Draw into an existing sprite with alpha blending at half strength
//	r, err := pge.NewRasterizer(0, 0,
//	    pge.WithPrimary(screen),
//	    pge.WithBlendMode(pge.BlendAlpha),
//	    pge.WithBlendFactor(0.5))
type Option func(*options)

// options holds optional configuration for Rasterizer creation.
type options struct {
	primary   *Sprite
	mode      BlendMode
	blendFunc BlendFunc
	factor    float64
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() options {
	return options{
		primary: nil, // Will be created if nil
		mode:    BlendNormal,
		factor:  1,
	}
}

// WithPrimary makes s the primary draw target instead of allocating one.
// The width and height passed to NewRasterizer are ignored.
func WithPrimary(s *Sprite) Option {
	return func(o *options) {
		o.primary = s
	}
}

// WithBlendMode sets the initial blend mode. BlendCustom only takes effect
// together with WithBlendFunc.
func WithBlendMode(m BlendMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithBlendFunc registers a custom blend function and selects BlendCustom.
func WithBlendFunc(fn BlendFunc) Option {
	return func(o *options) {
		o.blendFunc = fn
		if fn != nil {
			o.mode = BlendCustom
		}
	}
}

// WithBlendFactor sets the initial blend factor, clamped to [0, 1].
func WithBlendFactor(f float64) Option {
	return func(o *options) {
		o.factor = f
	}
}
