package jobs_test

import (
	"sync"
	"testing"
	"time"

	"deliverytracking/internal/adapters/out/memory/deliveryrepo"
	"deliverytracking/internal/adapters/out/metrics"
	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/jobs"
	"deliverytracking/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	metrics.NoopSink

	mu       sync.Mutex
	active   []int
	advanced []int
	errors   int
}

func (s *recordingSink) ActiveDeliveriesUpdate(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, count)
}

func (s *recordingSink) SimulationStepCompleted(_ time.Duration, advanced int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanced = append(s.advanced, advanced)
	if err != nil {
		s.errors++
	}
}

func addDelivery(t *testing.T, repo *deliveryrepo.Repository, random kernel.RandomSource) *delivery.Delivery {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Bob")
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Cantina")
	require.NoError(t, err)
	item, err := order.NewLineItem("Pizza", 1, decimal.NewFromInt(40))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer, restaurant, []order.LineItem{item})
	require.NoError(t, err)
	d, err := delivery.NewDelivery(kernel.NewUUID(), o,
		testutil.NewFakeClock(time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)),
		random, testutil.DiscardLogger())
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), d))
	return d
}

func TestDeliverySimulationJob_Run(t *testing.T) {
	t.Run("should advance active deliveries and record the step", func(t *testing.T) {
		repo := deliveryrepo.NewRepository()
		first, second := addDelivery(t, repo, testutil.NewScriptedRandom()), addDelivery(t, repo, testutil.NewScriptedRandom())
		require.NoError(t, second.UpdateStatus(t.Context(), delivery.Cancelled, ""))
		sink := &recordingSink{}
		job := jobs.NewDeliverySimulationJob(commands.NewAdvanceDeliveriesCommandHandler(repo),
			"* * * * * *", sink, testutil.DiscardLogger())

		job.Run(t.Context())

		assert.Equal(t, delivery.Ready, first.Status())
		assert.Equal(t, delivery.Cancelled, second.Status())
		assert.Equal(t, []int{1}, sink.advanced)
		assert.Zero(t, sink.errors)
	})

	t.Run("should reach delivered within seven runs", func(t *testing.T) {
		repo := deliveryrepo.NewRepository()
		d := addDelivery(t, repo, testutil.AlwaysRandom(0.9))
		job := jobs.NewDeliverySimulationJob(commands.NewAdvanceDeliveriesCommandHandler(repo),
			"* * * * * *", metrics.NewNoopSink(), testutil.DiscardLogger())

		for range 7 {
			job.Run(t.Context())
		}

		assert.Equal(t, delivery.Delivered, d.Status())
	})
}

func TestDeliverySimulationJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewDeliverySimulationJob(commands.NewAdvanceDeliveriesCommandHandler(deliveryrepo.NewRepository()),
			"not a schedule", metrics.NewNoopSink(), testutil.DiscardLogger())

		assert.Error(t, job.Start())
	})
}

func TestActiveDeliveriesJob_Run(t *testing.T) {
	t.Run("should publish the active count", func(t *testing.T) {
		repo := deliveryrepo.NewRepository()
		addDelivery(t, repo, testutil.NewScriptedRandom())
		done := addDelivery(t, repo, testutil.NewScriptedRandom())
		require.NoError(t, done.UpdateStatus(t.Context(), delivery.Delivered, ""))
		sink := &recordingSink{}
		job := jobs.NewActiveDeliveriesJob(queries.NewGetActiveDeliveriesQueryHandler(repo), sink, testutil.DiscardLogger())

		job.Run(t.Context())

		assert.Equal(t, []int{1}, sink.active)
	})
}

func TestJobManager(t *testing.T) {
	newManager := func(schedule string) *jobs.JobManager {
		repo := deliveryrepo.NewRepository()
		return jobs.NewJobManager(
			commands.NewAdvanceDeliveriesCommandHandler(repo),
			queries.NewGetActiveDeliveriesQueryHandler(repo),
			schedule, metrics.NewNoopSink(), testutil.DiscardLogger(),
		)
	}

	t.Run("should start and stop every job", func(t *testing.T) {
		jm := newManager("*/5 * * * * *")

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("should run without simulation", func(t *testing.T) {
		jm := newManager("")

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("should fail on an invalid simulation schedule", func(t *testing.T) {
		jm := newManager("every now and then")

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery simulation job")
	})
}
