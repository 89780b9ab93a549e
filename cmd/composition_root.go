package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/journal"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/adapters/out/postgres/journalrepo"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"
	"orderflow/internal/simulation"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *memory.OrderRegistry
	journal  kernel.Journal
	reader   ports.JournalReader

	// shared so every driver serialises status changes through one gate
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
}

// NewCompositionRoot wires the application. Journal lines go to console in simulate
// mode and to the structured log in serve mode, plus a recent-lines window and, when
// gormDB is not nil, the postgres journal.
func NewCompositionRoot(config Config, logger *slog.Logger, gormDB *gorm.DB, console io.Writer) (CompositionRoot, error) {
	recent, err := journal.NewRecent(config.JournalCapacity)
	if err != nil {
		return CompositionRoot{}, err
	}

	var primary kernel.Journal = journal.NewSlog(logger, slog.LevelInfo)
	if config.AppMode == ModeSimulate {
		primary = journal.NewWriter(console)
	}

	sinks := []kernel.Journal{primary, recent}
	var reader ports.JournalReader = recent
	if gormDB != nil {
		store, storeErr := journalrepo.NewGormJournal(gormDB)
		if storeErr != nil {
			return CompositionRoot{}, storeErr
		}
		sinks = append(sinks, store)
		reader = store
	}

	registry := memory.NewOrderRegistry()
	tee := journal.NewTee(sinks...)

	return CompositionRoot{
		config:                   config,
		logger:                   logger,
		registry:                 registry,
		journal:                  tee,
		reader:                   reader,
		changeOrderStatusHandler: commands.NewChangeOrderStatusCommandHandler(registry, tee),
	}, nil
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(services.NewDeliverySelector(), c.journal, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.registry, c.journal, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return c.changeOrderStatusHandler
}

func (c *CompositionRoot) CreateUnsubscribeCustomerCommandHandler() commands.UnsubscribeCustomerCommandHandler {
	return commands.NewUnsubscribeCustomerCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.registry, c.changeOrderStatusHandler)
}

func (c *CompositionRoot) CreatePurgeArchivedOrdersCommandHandler() commands.PurgeArchivedOrdersCommandHandler {
	return commands.NewPurgeArchivedOrdersCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateDispatchOrderCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateUnsubscribeCustomerCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.reader,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAdvanceOrdersCommandHandler(),
		c.CreatePurgeArchivedOrdersCommandHandler(),
		jobs.Schedules{
			Progression: c.config.ProgressionSchedule,
			Purge:       c.config.PurgeSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateSimulationDriver() *simulation.Driver {
	return simulation.NewDriver(
		c.CreateDispatchOrderCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateUnsubscribeCustomerCommandHandler(),
		c.journal,
		c.logger,
	)
}

// Run executes the configured mode until it finishes or ctx is cancelled.
func (c *CompositionRoot) Run(ctx context.Context) error {
	if c.config.AppMode == ModeServe {
		return c.serve(ctx)
	}
	return c.simulate(ctx)
}

func (c *CompositionRoot) simulate(ctx context.Context) error {
	scenario := simulation.DefaultScenario()
	if c.config.ScenarioFile != "" {
		loaded, err := simulation.Load(c.config.ScenarioFile)
		if err != nil {
			return err
		}
		scenario = loaded
	}

	_, err := c.CreateSimulationDriver().Run(ctx, scenario)
	return err
}

func (c *CompositionRoot) serve(ctx context.Context) error {
	e := httpin.NewEcho(c.CreateHTTPServer())
	jobManager := c.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.logger.InfoContext(ctx, "HTTP server listening", "port", c.config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", c.config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
