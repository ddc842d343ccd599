package voxeldb

import (
	"database/sql"
	_ "embed"

	"github.com/SrsBusiness/quadrics/internal/quadrics"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"

	_ "modernc.org/sqlite"
)

const ErrTypeSnapshotNotFound = "snapshot_not_found"

type VoxelDB struct {
	*sql.DB
}

// schema.sql creates the voxel_snapshot table holding frozen grids, their
// bounds and the quadric that produced them.
//
//go:embed schema.sql
var schemaSQL string

func NewVoxelDB(path string) (*VoxelDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening voxel database failed").
			WithTag("path", path).
			Wrap(err)
	}

	if _, err = db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.New("creating voxel database schema failed").
			WithTag("path", path).
			Wrap(err)
	}

	logs.WithTag("path", path).Info("initialized voxel database schema")

	return &VoxelDB{db}, nil
}

// InsertSnapshot stores s and returns its id. An empty s.ID is replaced by a
// new random UUID.
func (vdb *VoxelDB) InsertSnapshot(s *quadrics.Snapshot) (string, error) {
	if s == nil {
		return "", errors.New("nil snapshot")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	quadricJSON, err := json.Marshal(s.Quadric)
	if err != nil {
		return "", errors.New("encoding quadric failed").Wrap(err)
	}

	stmt := `INSERT INTO voxel_snapshot (snapshot_id, taken_unix_nanos, quadric_json, min_x, min_y, min_z, max_x, max_y, max_z, strategy, codec, plotted, grid_blob)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = vdb.Exec(stmt, s.ID, s.TakenUnixNanos, string(quadricJSON),
		s.Bounds.Min.X, s.Bounds.Min.Y, s.Bounds.Min.Z,
		s.Bounds.Max.X, s.Bounds.Max.Y, s.Bounds.Max.Z,
		s.Strategy, int(s.Codec), s.Plotted, s.Blob)
	if err != nil {
		return "", errors.New("inserting snapshot failed").
			WithTag("snapshot_id", s.ID).
			Wrap(err)
	}
	return s.ID, nil
}

const selectSnapshot = `SELECT snapshot_id, taken_unix_nanos, quadric_json, min_x, min_y, min_z, max_x, max_y, max_z, strategy, codec, plotted, grid_blob
	FROM voxel_snapshot`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*quadrics.Snapshot, error) {
	var (
		s           quadrics.Snapshot
		quadricJSON string
		codec       int
	)
	err := row.Scan(&s.ID, &s.TakenUnixNanos, &quadricJSON,
		&s.Bounds.Min.X, &s.Bounds.Min.Y, &s.Bounds.Min.Z,
		&s.Bounds.Max.X, &s.Bounds.Max.Y, &s.Bounds.Max.Z,
		&s.Strategy, &codec, &s.Plotted, &s.Blob)
	if err != nil {
		return nil, err
	}
	s.Codec = quadrics.Codec(codec)
	if err := json.Unmarshal([]byte(quadricJSON), &s.Quadric); err != nil {
		return nil, errors.New("decoding quadric failed").
			WithTag("snapshot_id", s.ID).
			Wrap(err)
	}
	return &s, nil
}

// GetSnapshot returns the snapshot with the given id.
func (vdb *VoxelDB) GetSnapshot(id string) (*quadrics.Snapshot, error) {
	s, err := scanSnapshot(vdb.QueryRow(selectSnapshot+` WHERE snapshot_id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, errors.New("snapshot not found").
			WithType(ErrTypeSnapshotNotFound).
			WithTag("snapshot_id", id)
	}
	if err != nil {
		return nil, errors.New("reading snapshot failed").
			WithTag("snapshot_id", id).
			Wrap(err)
	}
	return s, nil
}

// ListSnapshots returns up to limit snapshots, newest first.
func (vdb *VoxelDB) ListSnapshots(limit int) ([]*quadrics.Snapshot, error) {
	rows, err := vdb.Query(selectSnapshot+` ORDER BY taken_unix_nanos DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.New("listing snapshots failed").Wrap(err)
	}
	defer rows.Close()

	var out []*quadrics.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, errors.New("reading snapshot failed").Wrap(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing snapshots failed").Wrap(err)
	}
	return out, nil
}

// LoadFrozen decodes the frozen grid stored under id.
func (vdb *VoxelDB) LoadFrozen(id string) (*quadrics.Frozen, error) {
	s, err := vdb.GetSnapshot(id)
	if err != nil {
		return nil, err
	}
	return s.Frozen()
}
