// Package noop provides a no-operation GPU backend.
//
// The noop backend implements all rhi interfaces but performs no actual GPU operations.
// It is useful for:
//   - Testing code without GPU hardware
//   - CI/CD environments without GPU access
//   - Reference implementation showing minimal rhi requirements
//   - Fallback when no real backend is available
//
// Operations complete immediately and return placeholder resources; the
// exceptions are CreateQuerySet and CreateRenderBundleEncoder, which return
// errors.
// The backend is identified as types.BackendEmpty.
package noop
