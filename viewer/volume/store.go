package volume

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/volcast/common"
)

// Store holds the named density volumes available for display. Built-in
// procedural datasets are synthesized up front; loaded files can be added
// alongside them.
type Store interface {
	// Names returns the registered dataset names in stable registration order.
	//
	// Returns:
	//   - []string: the dataset names
	Names() []string

	// Get retrieves a dataset by name.
	//
	// Parameters:
	//   - name: the dataset name
	//
	// Returns:
	//   - *Descriptor: the dataset, nil if unknown
	//   - error: an AssetError if no dataset has that name
	Get(name string) (*Descriptor, error)

	// Gradients returns the dataset's gradient-magnitude payload, one byte
	// per voxel padded to whole 32-bit words for storage-buffer upload.
	// Gradients are computed on first request and cached.
	//
	// Parameters:
	//   - name: the dataset name
	//
	// Returns:
	//   - []byte: the padded gradient payload
	//   - error: an AssetError if no dataset has that name
	Gradients(name string) ([]byte, error)

	// Register adds a dataset to the store, replacing any dataset of the
	// same name.
	//
	// Parameters:
	//   - d: the dataset to register
	//
	// Returns:
	//   - error: a ResourceError if the descriptor fails validation
	Register(d Descriptor) error
}

type storeImpl struct {
	mu         sync.Mutex
	order      []string
	volumes    map[string]*Descriptor
	gradients  map[string][]byte
	resolution uint32
	workers    int
}

var _ Store = &storeImpl{}

// NewStore builds a volume store pre-populated with the built-in
// procedural datasets "sphere", "blob", and "noise". Synthesis is fanned
// out across a worker pool one z-slice per task.
//
// Parameters:
//   - options: optional configuration overrides
//
// Returns:
//   - Store: the populated store
func NewStore(options ...StoreOption) Store {
	s := &storeImpl{
		volumes:    make(map[string]*Descriptor),
		gradients:  make(map[string][]byte),
		resolution: 64,
		workers:    4,
	}
	for _, option := range options {
		option(s)
	}

	pool := worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)
	builtins := []struct {
		name string
		fn   densityFunc
	}{
		{"sphere", sphereDensity},
		{"blob", blobDensity},
		{"noise", noiseDensity},
	}
	for _, b := range builtins {
		s.register(s.synthesize(pool, b.name, b.fn))
	}
	return s
}

// synthesize rasterizes a procedural field at the store resolution, one
// pool task per z-slice. A WaitGroup provides the completion barrier since
// the pool outlives any single dataset.
func (s *storeImpl) synthesize(pool worker.DynamicWorkerPool, name string, fn densityFunc) Descriptor {
	n := s.resolution
	voxels := make([]byte, int(n)*int(n)*int(n))
	sliceSize := int(n) * int(n)

	var wg sync.WaitGroup
	taskID := 0
	for z := range int(n) {
		wg.Add(1)
		zCap := z
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				synthesizeSlice(fn, n, n, n, zCap, voxels[zCap*sliceSize:(zCap+1)*sliceSize])
				return nil, nil
			},
		})
	}
	wg.Wait()

	return Descriptor{Name: name, Width: n, Height: n, Depth: n, Voxels: voxels}
}

func (s *storeImpl) register(d Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.volumes[d.Name]; !ok {
		s.order = append(s.order, d.Name)
	}
	s.volumes[d.Name] = &d
	delete(s.gradients, d.Name)
}

func (s *storeImpl) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *storeImpl) Get(name string) (*Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.volumes[name]
	if !ok {
		return nil, &common.AssetError{Kind: "volume", Name: name}
	}
	return d, nil
}

func (s *storeImpl) Gradients(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.gradients[name]; ok {
		return g, nil
	}
	d, ok := s.volumes[name]
	if !ok {
		return nil, &common.AssetError{Kind: "volume", Name: name}
	}

	data := make([]byte, int(d.Width)*int(d.Height)*int(d.Depth))
	sliceSize := int(d.Width) * int(d.Height)
	for z := range int(d.Depth) {
		gradientSlice(d, z, data[z*sliceSize:(z+1)*sliceSize])
	}
	data = padGradients(data)
	s.gradients[name] = data
	return data, nil
}

func (s *storeImpl) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return &common.ResourceError{Op: "register volume", Err: err}
	}
	s.register(d)
	return nil
}
