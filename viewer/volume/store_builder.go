package volume

// StoreOption configures a Store during construction.
type StoreOption func(*storeImpl)

// WithResolution sets the edge length in voxels used for the built-in
// procedural datasets. Values below 8 are ignored.
//
// Parameters:
//   - resolution: the cubic dataset edge length
//
// Returns:
//   - StoreOption: the option to apply
func WithResolution(resolution uint32) StoreOption {
	return func(s *storeImpl) {
		if resolution >= 8 {
			s.resolution = resolution
		}
	}
}

// WithSynthesisWorkers sets the worker-pool size used when rasterizing the
// built-in datasets. Values below 1 are ignored.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - StoreOption: the option to apply
func WithSynthesisWorkers(workers int) StoreOption {
	return func(s *storeImpl) {
		if workers >= 1 {
			s.workers = workers
		}
	}
}
