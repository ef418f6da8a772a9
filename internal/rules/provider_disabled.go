//go:build !protogen

package rules

// NewRemoteProvider is a no-op in builds without generated proto stubs; the
// caller falls back to the local repository-backed provider.
func NewRemoteProvider(_ string) (Provider, error) {
	return nil, nil
}
