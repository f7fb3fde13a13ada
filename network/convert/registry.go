package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/dictionary"
	"github.com/VictoriaMetrics/metrics"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"io"
	"slices"
	"sync"
)

var registryLogger = logger.GetLogger("registry")

// CreationHook customizes a converter before it is published. Hooks run in
// registration order, once per converter.
type CreationHook func(c *TypeConverter)

// pendingConverter is a registry entry. done is closed once conv or err is set.
type pendingConverter struct {
	done chan struct{}
	conv *TypeConverter
	err  error
}

func (p *pendingConverter) published() (*TypeConverter, bool) {
	select {
	case <-p.done:
		return p.conv, p.conv != nil
	default:
		return nil, false
	}
}

// Registry owns one TypeConverter per protocol version. Converters are created
// on first use and never evicted (until Reset).
type Registry struct {
	loader     dictionary.Loader
	converters *xsync.MapOf[int, *pendingConverter]

	hooksMu sync.RWMutex
	hooks   []CreationHook

	metrics *metrics.Set
}

// NewRegistry creates a registry that loads dictionaries with loader
func NewRegistry(loader dictionary.Loader) *Registry {
	r := &Registry{
		loader:     loader,
		converters: xsync.NewMapOf[int, *pendingConverter](),
		metrics:    metrics.NewSet(),
	}
	r.metrics.NewGauge("typeconv_converters", func() float64 {
		return float64(len(r.All()))
	})
	return r
}

// AddCreationHook registers a hook for converters created from now on.
// Existing converters are not affected.
func (r *Registry) AddCreationHook(h CreationHook) {
	r.hooksMu.Lock()
	defer r.hooksMu.Unlock()
	r.hooks = append(r.hooks, h)
}

// Get returns the converter of a protocol version, creating it on first use.
// Concurrent first calls for the same version wait for a single creation;
// calls for other versions are not blocked. A failed creation is not cached.
func (r *Registry) Get(protocolID int) (*TypeConverter, error) {
	p, ok := r.converters.Load(protocolID)
	if !ok {
		var loaded bool
		p, loaded = r.converters.LoadOrStore(protocolID, &pendingConverter{done: make(chan struct{})})
		if !loaded {
			r.create(protocolID, p)
		}
	}
	<-p.done
	return p.conv, p.err
}

// Preload creates the converters of the given versions
func (r *Registry) Preload(protocolIDs ...int) error {
	for _, id := range protocolIDs {
		if _, err := r.Get(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) create(protocolID int, p *pendingConverter) {
	defer close(p.done)
	defer func() {
		if p.conv == nil && p.err == nil {
			// a hook panicked, let waiters and later callers see a failure
			p.err = errors.Newf("creation of protocol %d converter aborted", protocolID)
			r.forget(protocolID, p)
		}
	}()

	conv, err := r.build(protocolID)
	if err != nil {
		registryLogger.Errorf("failed to create type converter for protocol %d: %v", protocolID, err)
		p.err = err
		r.forget(protocolID, p)
		return
	}
	p.conv = conv
}

// forget removes p unless a Reset already replaced it with a newer entry
func (r *Registry) forget(protocolID int, p *pendingConverter) {
	r.converters.Compute(protocolID, func(old *pendingConverter, loaded bool) (*pendingConverter, bool) {
		return old, !loaded || old == p
	})
}

func (r *Registry) build(protocolID int) (*TypeConverter, error) {
	set, err := r.loader(protocolID)
	if err != nil {
		return nil, errors.Wrapf(err, "load dictionaries for protocol %d", protocolID)
	}
	if set.ProtocolID != protocolID {
		return nil, errors.Newf("loader returned dictionaries of protocol %d for protocol %d", set.ProtocolID, protocolID)
	}
	conv, err := newTypeConverter(set, r.metrics)
	if err != nil {
		return nil, err
	}

	r.hooksMu.RLock()
	hooks := slices.Clone(r.hooks)
	r.hooksMu.RUnlock()

	for _, h := range hooks {
		h(conv)
	}
	conv.seal()

	registryLogger.Infof("created type converter for protocol %d (%d creation hooks)", protocolID, len(hooks))
	return conv, nil
}

// All returns the published converters by protocol version
func (r *Registry) All() map[int]*TypeConverter {
	out := make(map[int]*TypeConverter)
	r.converters.Range(func(id int, p *pendingConverter) bool {
		if conv, ok := p.published(); ok {
			out[id] = conv
		}
		return true
	})
	return out
}

// Protocols returns the versions of all published converters in ascending order
func (r *Registry) Protocols() []int {
	all := r.All()
	out := make([]int, 0, len(all))
	for id := range all {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Reset drops every converter. Converters already handed out stay usable.
func (r *Registry) Reset() {
	r.converters.Clear()
}

// WriteMetrics writes the registry's metrics in Prometheus text format
func (r *Registry) WriteMetrics(w io.Writer) {
	r.metrics.WritePrometheus(w)
}
