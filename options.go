package pdflayout

import "time"

// rendererConfig holds internal configuration for a Renderer.
type rendererConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	headless     string
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		timeout:  30 * time.Second,
		headless: "new",
	}
}

// RendererOption configures a [Renderer].
type RendererOption func(*rendererConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default the renderer searches standard locations automatically.
func WithChromePath(path string) RendererOption {
	return func(c *rendererConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single render.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) RendererOption {
	return func(c *rendererConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() RendererOption {
	return func(c *rendererConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload downloads a compatible Chromium binary when no
// browser is found at the configured path. The downloaded binary is
// cached in the user cache directory across runs.
func WithAutoDownload() RendererOption {
	return func(c *rendererConfig) {
		c.autoDownload = true
	}
}
