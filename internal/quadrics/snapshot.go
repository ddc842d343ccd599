package quadrics

import "time"

// Snapshot is a persisted frozen grid together with what produced it.
type Snapshot struct {
	ID             string
	Quadric        Quadric
	Bounds         Bounds
	Strategy       string
	Codec          Codec
	Blob           []byte // Frozen.Encode(Codec)
	Plotted        int64
	TakenUnixNanos int64
}

// SnapshotStore persists snapshots and returns their ids. Implemented by
// voxeldb.VoxelDB.
type SnapshotStore interface {
	InsertSnapshot(s *Snapshot) (string, error)
}

// NewSnapshot encodes f with the codec.
func NewSnapshot(q Quadric, f *Frozen, s Strategy, c Codec) (*Snapshot, error) {
	blob, err := f.Encode(c)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Quadric:        q,
		Bounds:         f.Bounds,
		Strategy:       s.String(),
		Codec:          c,
		Blob:           blob,
		Plotted:        f.Count(),
		TakenUnixNanos: time.Now().UnixNano(),
	}, nil
}

// Frozen decodes the snapshot's grid.
func (s *Snapshot) Frozen() (*Frozen, error) {
	return DecodeFrozen(s.Bounds, s.Blob, s.Codec)
}
