// Package tx routes packed wire messages to their domain decoders by
// type URL, and assembles lists of domain messages into a wire
// transaction body.
//
// A Registry is populated once with Register (or NewDefaultRegistry)
// and is then safe for concurrent Pack and Unpack calls.
package tx

import (
	"reflect"
	"sort"
	"sync"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/config"
	"github.com/blockberries/chainmsg/types"
)

var (
	ErrUnknownTypeURL    = errors.New("unknown type URL")
	ErrDuplicateTypeURL  = errors.New("type URL already registered")
	ErrMessageTooLarge   = errors.New("message payload too large")
	ErrMalformedPayload  = errors.New("malformed message payload")
	ErrUnexpectedMsgType = errors.New("unexpected message type for type URL")
)

type entry struct {
	unpack func(data []byte) (chainmsg.Msg, error)
	pack   func(msg chainmsg.Msg) ([]byte, error)
}

// Registry maps type URLs to message transcoders.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry

	cfg     config.Config
	logger  *zap.Logger
	metrics *metrics
}

// Option configures a Registry.
type Option func(*Registry) error

// WithLogger sets the registry logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) error {
		r.logger = logger
		return nil
	}
}

// WithMetrics registers transcoding counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) error {
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		r.metrics = m
		return nil
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(cfg config.Config, opts ...Option) (*Registry, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "new registry")
	}
	r := &Registry{
		entries: make(map[string]entry),
		cfg:     cfg,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, errors.Wrap(err, "new registry")
		}
	}
	return r, nil
}

// Register binds D's type URL to the wire message W. Registering the
// same type URL twice is an error.
func Register[W any, D chainmsg.Transcodable[W, D]](r *Registry) error {
	var zero D
	typeURL := zero.TypeURL()

	e := entry{
		unpack: func(data []byte) (chainmsg.Msg, error) {
			var w W
			if err := cramberry.Unmarshal(data, &w); err != nil {
				return nil, errors.Wrapf(ErrMalformedPayload, "%s: %v", typeURL, err)
			}
			d, err := zero.Decode(w)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
		pack: func(msg chainmsg.Msg) ([]byte, error) {
			var d D
			switch v := any(msg).(type) {
			case D:
				d = v
			case *D:
				d = *v
			default:
				return nil, errors.Wrapf(ErrUnexpectedMsgType, "%s: got %T", typeURL, msg)
			}
			w := d.Encode()
			data, err := cramberry.Marshal(&w)
			if err != nil {
				return nil, errors.Wrapf(err, "cramberry marshal %s", typeURL)
			}
			return data, nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[typeURL]; ok {
		return errors.Wrap(ErrDuplicateTypeURL, typeURL)
	}
	r.entries[typeURL] = e
	r.logger.Debug("registered message", zap.String("type_url", typeURL))
	return nil
}

// TypeURLs returns the registered type URLs in sorted order.
func (r *Registry) TypeURLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	urls := make([]string, 0, len(r.entries))
	for u := range r.entries {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// Resolve returns the canonical type URL for typeURL, following the
// configured aliases.
func (r *Registry) Resolve(typeURL string) string {
	if target, ok := r.cfg.TypeURLAliases[typeURL]; ok {
		return target
	}
	return typeURL
}

func (r *Registry) lookup(typeURL string) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[r.Resolve(typeURL)]
	return e, ok
}

// Pack encodes msg into an Any under its canonical type URL.
func (r *Registry) Pack(msg chainmsg.Msg) (types.Any, error) {
	if isNil(msg) {
		return types.Any{}, errors.Wrapf(ErrUnexpectedMsgType, "nil message %T", msg)
	}
	typeURL := msg.TypeURL()
	e, ok := r.lookup(typeURL)
	if !ok {
		r.metrics.observe(directionPack, "", ErrUnknownTypeURL)
		return types.Any{}, errors.Wrap(ErrUnknownTypeURL, typeURL)
	}
	data, err := e.pack(msg)
	r.metrics.observe(directionPack, typeURL, err)
	if err != nil {
		return types.Any{}, err
	}
	return types.Any{TypeURL: typeURL, Value: data}, nil
}

// Unpack decodes a into its domain message. Conversion failures are
// returned as *chainmsg.Error with the kind intact.
func (r *Registry) Unpack(a types.Any) (chainmsg.Msg, error) {
	e, ok := r.lookup(a.TypeURL)
	if !ok {
		r.metrics.observe(directionUnpack, "", ErrUnknownTypeURL)
		r.logger.Debug("unknown type URL", zap.String("type_url", a.TypeURL))
		return nil, errors.Wrap(ErrUnknownTypeURL, a.TypeURL)
	}
	typeURL := r.Resolve(a.TypeURL)
	if len(a.Value) > r.cfg.MaxMessageBytes {
		r.metrics.observe(directionUnpack, typeURL, ErrMessageTooLarge)
		return nil, errors.Wrapf(ErrMessageTooLarge, "%s: %d bytes, max %d",
			typeURL, len(a.Value), r.cfg.MaxMessageBytes)
	}
	msg, err := e.unpack(a.Value)
	r.metrics.observe(directionUnpack, typeURL, err)
	if err != nil {
		r.logger.Debug("unpack failed",
			zap.String("type_url", typeURL),
			zap.String("kind", string(chainmsg.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}
	return msg, nil
}

// PackAll packs msgs in order. The first failure aborts.
func (r *Registry) PackAll(msgs []chainmsg.Msg) ([]types.Any, error) {
	anys := make([]types.Any, 0, len(msgs))
	for i, msg := range msgs {
		a, err := r.Pack(msg)
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		anys = append(anys, a)
	}
	return anys, nil
}

// UnpackAll unpacks anys in order. The first failure aborts; no
// partial list is returned.
func (r *Registry) UnpackAll(anys []types.Any) ([]chainmsg.Msg, error) {
	msgs := make([]chainmsg.Msg, 0, len(anys))
	for i, a := range anys {
		msg, err := r.Unpack(a)
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// UnpackAs decodes a and asserts the result is a D.
func UnpackAs[D chainmsg.Msg](r *Registry, a types.Any) (D, error) {
	var zero D
	msg, err := r.Unpack(a)
	if err != nil {
		return zero, err
	}
	d, ok := msg.(D)
	if !ok {
		return zero, errors.Wrapf(ErrUnexpectedMsgType, "%s: got %T, want %T", a.TypeURL, msg, zero)
	}
	return d, nil
}

// isNil reports whether msg is nil or a nil pointer. Value-receiver
// methods called through a nil pointer panic.
func isNil(msg chainmsg.Msg) bool {
	if msg == nil {
		return true
	}
	v := reflect.ValueOf(msg)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
