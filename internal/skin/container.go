package skin

import (
	"image/color"
	"sync"

	"beatline/internal/audio"

	"fyne.io/fyne/v2"
)

// ContainerConfig controls chain construction.
type ContainerConfig struct {
	// Fallback is the next lookup link when no own source matches.
	// Usually the parent scope's container; may be nil at the chain root.
	Fallback Source
	// DisableFallback suppresses the fallback even when one is set.
	DisableFallback bool
}

// Container composes an ordered list of skin sources into one lookup
// chain. Lookups scan sources in list order and stop at the first hit;
// on a full miss the fallback is consulted unless fallback is disabled.
// Containers are themselves sources, so descendants can use one as
// their fallback link.
type Container struct {
	mu            sync.Mutex
	config        ContainerConfig
	sources       []Source
	subscriptions []func()
	fallbackUnsub func()
	observers     map[int]func()
	nextObserver  int
	closed        bool
}

// NewContainer creates an empty container.
func NewContainer(config ContainerConfig) *Container {
	chain := &Container{
		config:    config,
		observers: make(map[int]func()),
	}
	chain.fallbackUnsub = subscribeIfNotifier(config.Fallback, chain.notifyChanged)
	return chain
}

// AddSource appends a source to the end of the lookup list.
// The source is shared, not owned: removal never releases it.
func (chain *Container) AddSource(source Source) {
	if source == nil {
		return
	}
	chain.mu.Lock()
	chain.sources = append(chain.sources, source)
	chain.subscriptions = append(chain.subscriptions, subscribeIfNotifier(source, chain.notifyChanged))
	chain.mu.Unlock()

	chain.notifyChanged()
}

// RemoveSource removes the first occurrence of the source and reports
// whether it was present.
func (chain *Container) RemoveSource(source Source) bool {
	chain.mu.Lock()
	index := -1
	for i, candidate := range chain.sources {
		if candidate == source {
			index = i
			break
		}
	}
	if index < 0 {
		chain.mu.Unlock()
		return false
	}
	unsubscribe := chain.subscriptions[index]
	chain.sources = append(chain.sources[:index], chain.sources[index+1:]...)
	chain.subscriptions = append(chain.subscriptions[:index], chain.subscriptions[index+1:]...)
	chain.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	chain.notifyChanged()
	return true
}

// SetSources replaces the whole lookup list.
func (chain *Container) SetSources(sources []Source) {
	chain.mu.Lock()
	released := chain.subscriptions
	chain.sources = nil
	chain.subscriptions = nil
	for _, source := range sources {
		if source == nil {
			continue
		}
		chain.sources = append(chain.sources, source)
		chain.subscriptions = append(chain.subscriptions, subscribeIfNotifier(source, chain.notifyChanged))
	}
	chain.mu.Unlock()

	for _, unsubscribe := range released {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
	chain.notifyChanged()
}

// Sources returns the lookup list in order.
func (chain *Container) Sources() []Source {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	return append([]Source(nil), chain.sources...)
}

// SetFallback replaces the fallback link.
func (chain *Container) SetFallback(fallback Source) {
	chain.mu.Lock()
	released := chain.fallbackUnsub
	chain.config.Fallback = fallback
	chain.fallbackUnsub = subscribeIfNotifier(fallback, chain.notifyChanged)
	chain.mu.Unlock()

	if released != nil {
		released()
	}
	chain.notifyChanged()
}

// OnChange registers a change handler and returns its unsubscribe call.
// Handlers fire after any source list mutation, fallback replacement,
// or change reported by a constituent source or the fallback.
func (chain *Container) OnChange(handler func()) func() {
	chain.mu.Lock()
	defer chain.mu.Unlock()

	if chain.closed || handler == nil {
		return func() {}
	}
	id := chain.nextObserver
	chain.nextObserver++
	chain.observers[id] = handler
	return func() {
		chain.mu.Lock()
		delete(chain.observers, id)
		chain.mu.Unlock()
	}
}

// Close releases every subscription held by the container. Sources are
// untouched; only the bookkeeping is torn down.
func (chain *Container) Close() {
	chain.mu.Lock()
	if chain.closed {
		chain.mu.Unlock()
		return
	}
	chain.closed = true
	released := chain.subscriptions
	fallbackUnsub := chain.fallbackUnsub
	chain.subscriptions = nil
	chain.fallbackUnsub = nil
	chain.observers = make(map[int]func())
	chain.mu.Unlock()

	for _, unsubscribe := range released {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
	if fallbackUnsub != nil {
		fallbackUnsub()
	}
}

// Drawable resolves a component through the chain.
func (chain *Container) Drawable(component Component) fyne.CanvasObject {
	sources, fallback := chain.snapshot()
	for _, source := range sources {
		if drawable := source.Drawable(component); drawable != nil {
			return drawable
		}
	}
	if fallback != nil {
		return fallback.Drawable(component)
	}
	return nil
}

// Texture resolves a named texture through the chain.
func (chain *Container) Texture(name string) fyne.Resource {
	sources, fallback := chain.snapshot()
	for _, source := range sources {
		if texture := source.Texture(name); texture != nil {
			return texture
		}
	}
	if fallback != nil {
		return fallback.Texture(name)
	}
	return nil
}

// Sample resolves a named sample through the chain.
func (chain *Container) Sample(name string) *audio.Sample {
	sources, fallback := chain.snapshot()
	for _, source := range sources {
		if sample := source.Sample(name); sample != nil {
			return sample
		}
	}
	if fallback != nil {
		return fallback.Sample(name)
	}
	return nil
}

// ConfigValue resolves a skin configuration value through the chain.
func (chain *Container) ConfigValue(key string) (string, bool) {
	sources, fallback := chain.snapshot()
	for _, source := range sources {
		if value, ok := source.ConfigValue(key); ok {
			return value, true
		}
	}
	if fallback != nil {
		return fallback.ConfigValue(key)
	}
	return "", false
}

// Colour resolves a named colour through the chain.
func (chain *Container) Colour(name string) (color.Color, bool) {
	sources, fallback := chain.snapshot()
	for _, source := range sources {
		if value, ok := source.Colour(name); ok {
			return value, true
		}
	}
	if fallback != nil {
		return fallback.Colour(name)
	}
	return nil, false
}

func (chain *Container) snapshot() ([]Source, Source) {
	chain.mu.Lock()
	defer chain.mu.Unlock()

	sources := append([]Source(nil), chain.sources...)
	if chain.config.DisableFallback {
		return sources, nil
	}
	return sources, chain.config.Fallback
}

func (chain *Container) notifyChanged() {
	chain.mu.Lock()
	handlers := make([]func(), 0, len(chain.observers))
	for _, handler := range chain.observers {
		handlers = append(handlers, handler)
	}
	chain.mu.Unlock()

	for _, handler := range handlers {
		handler()
	}
}

func subscribeIfNotifier(source Source, handler func()) func() {
	if notifier, ok := source.(Notifier); ok {
		return notifier.OnChange(handler)
	}
	return nil
}
