package ai

import "context"

// ResetForTest clears the cached provider.
func (f *Factory) ResetForTest() { f.reset() }

// SetConstructorForTest replaces the constructor of typ.
func (f *Factory) SetConstructorForTest(typ ProviderType, build func(ctx context.Context, cfg ProviderConfig) Provider) {
	f.constructors[typ] = build
}
