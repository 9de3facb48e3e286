package noop

import "github.com/gorhi/rhi"

// init registers the noop backend with the backend registry.
func init() {
	rhi.RegisterBackend(API{})
}
