package quadrics

type Real = float64

const (
	Epsilon       = 0.5 // probe offset used by the surface classifier, in lattice units
	MaxSeekSteps  = 1 << 20
	Workers       = 0 // 0 means runtime.NumCPU()
	GIFOut        = "gifs/surface.gif"
	GIFDelay      = 10 // 100ths of a second per frame
	GIFScale      = 4  // pixels per voxel edge
	DefaultCodec  = "zstd"
	NumNeighbors  = 26
	degenerateTol = 1e-12
	frozenMagic   = "QVOX"
	frozenVersion = 1

	minDecodeBudget = 1 << 20 // bytes a zstd decode may always use
)

// Error types attached with errors.WithType.
const (
	ErrTypeInvalidBounds   = "invalid_bounds"
	ErrTypeVolumeOverflow  = "volume_overflow"
	ErrTypeInvalidConfig   = "invalid_config"
	ErrTypeInvalidFrozen   = "invalid_frozen"
	ErrTypeUnknownCodec    = "unknown_codec"
	ErrTypeUnknownStrategy = "unknown_strategy"
)
