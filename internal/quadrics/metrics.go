package quadrics

import (
	"strconv"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	strategyLabel = "strategy"
	resultLabel   = "result"
	errTypeLabel  = "error_type"
)

var (
	voxelsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrics_voxels_claimed_total",
		Help: "The number of voxels claimed and classified by flood fills.",
	}, []string{
		strategyLabel,
	})

	surfaceVoxels = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrics_surface_voxels_total",
		Help: "The number of claimed voxels classified as surface.",
	}, []string{
		strategyLabel,
	})

	claimsLost = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrics_claims_lost_total",
		Help: "Candidates pruned because their voxel was already claimed.",
	}, []string{
		strategyLabel,
	})

	fillDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "quadrics_fill_duration_seconds",
		Help: "The time one flood fill takes.",
	}, []string{
		strategyLabel,
	})

	seeks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrics_seek_total",
		Help: "Surface seeks by outcome.",
	}, []string{
		resultLabel,
	})

	persistErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadrics_persist_errors_total",
		Help: "The errors that occurred while persisting frozen grids.",
	}, []string{
		errTypeLabel,
	})
)

func instrumentFill(s Strategy, st FillStats, start time.Time) {
	labels := prometheus.Labels{strategyLabel: s.String()}
	voxelsClaimed.With(labels).Add(float64(st.Claimed))
	surfaceVoxels.With(labels).Add(float64(st.Surface))
	claimsLost.With(labels).Add(float64(st.Lost))
	fillDuration.With(labels).Observe(time.Since(start).Seconds())
}

func instrumentSeek(ok bool) {
	seeks.With(prometheus.Labels{
		resultLabel: strconv.FormatBool(ok),
	}).Inc()
}

func instrumentPersistError(err error) {
	persistErrors.
		With(prometheus.Labels{
			errTypeLabel: errors.Type(err),
		}).
		Inc()
}
