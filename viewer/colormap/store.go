package colormap

import (
	"sync"

	"github.com/Carmen-Shannon/volcast/common"
)

// Store holds the named transfer functions available for display.
type Store interface {
	// Names returns the registered colormap names in stable registration
	// order.
	//
	// Returns:
	//   - []string: the colormap names
	Names() []string

	// Get retrieves a colormap by name.
	//
	// Parameters:
	//   - name: the colormap name
	//
	// Returns:
	//   - *Colormap: the colormap, nil if unknown
	//   - error: an AssetError if no colormap has that name
	Get(name string) (*Colormap, error)

	// Register adds a colormap to the store, replacing any colormap of the
	// same name.
	//
	// Parameters:
	//   - c: the colormap to register
	//
	// Returns:
	//   - error: a ResourceError if the colormap fails validation
	Register(c Colormap) error
}

type storeImpl struct {
	mu    sync.Mutex
	order []string
	maps  map[string]*Colormap
}

var _ Store = &storeImpl{}

// NewStore builds a colormap store pre-populated with the built-in maps
// "grayscale", "viridis", "fire", "cool-warm", and "two-color".
//
// Returns:
//   - Store: the populated store
func NewStore() Store {
	s := &storeImpl{maps: make(map[string]*Colormap)}
	for _, c := range []Colormap{
		grayscaleColormap(),
		viridisColormap(),
		fireColormap(),
		coolWarmColormap(),
		twoColorColormap(),
	} {
		s.register(c)
	}
	return s
}

func (s *storeImpl) register(c Colormap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[c.Name]; !ok {
		s.order = append(s.order, c.Name)
	}
	s.maps[c.Name] = &c
}

func (s *storeImpl) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *storeImpl) Get(name string) (*Colormap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.maps[name]
	if !ok {
		return nil, &common.AssetError{Kind: "colormap", Name: name}
	}
	return c, nil
}

func (s *storeImpl) Register(c Colormap) error {
	if err := c.Validate(); err != nil {
		return &common.ResourceError{Op: "register colormap", Err: err}
	}
	s.register(c)
	return nil
}
