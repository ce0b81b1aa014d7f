//go:build !ebiten

package host

// Run reports ErrNoWindow: window support requires the ebiten build tag.
// The arguments are still validated so configuration errors surface early.
func Run(app Application, cfg Config) error {
	if _, _, err := prepare(app, cfg); err != nil {
		return err
	}
	return ErrNoWindow
}
