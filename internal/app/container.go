package app

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sriraghavi22/career-catalyst-project/internal/config"
	"github.com/sriraghavi22/career-catalyst-project/internal/database"
	"github.com/sriraghavi22/career-catalyst-project/internal/database/migration"
	dbpostgres "github.com/sriraghavi22/career-catalyst-project/internal/database/postgres"
	dbseeder "github.com/sriraghavi22/career-catalyst-project/internal/database/seeder"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/cache"
	"github.com/sriraghavi22/career-catalyst-project/internal/infrastructure/extractor"
	"github.com/sriraghavi22/career-catalyst-project/internal/matching"
	"github.com/sriraghavi22/career-catalyst-project/internal/rank"
	"github.com/sriraghavi22/career-catalyst-project/internal/repository"
	"github.com/sriraghavi22/career-catalyst-project/internal/taxonomy"
	"github.com/sriraghavi22/career-catalyst-project/internal/usecase"
	"github.com/sriraghavi22/career-catalyst-project/internal/ws"
)

// Container wires configuration into the scoring engine and its
// collaborators. Postgres and redis are both optional; scoring works with
// no backing services at all.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Redis *cache.Redis

	Engine *matching.Engine
	Batch  *rank.Batch
	Hub    *ws.Hub

	Analyze usecase.AnalyzeUsecase
	Match   usecase.MatchUsecase
	Rank    usecase.RankUsecase
	Report  usecase.ReportUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	var db database.DB
	if strings.TrimSpace(cfg.Database.DBHost) != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		conn, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		mig := migration.Runner{Dir: cfg.Database.MigrationsDir}
		if err := mig.Run(ctx, conn.SQLDB()); err != nil {
			_ = conn.Close()
			return nil, err
		}

		seed := dbseeder.Runner{Seeders: dbseeder.Defaults()}
		if err := seed.Run(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, err
		}

		db = conn
	} else {
		logger.Printf("Persistence disabled | reason=no_db_host")
	}

	redis := cache.NewRedis(logger)

	tax, err := loadTaxonomy(cfg.Engine, logger)
	if err != nil {
		return nil, err
	}

	engine, err := matching.NewEngine(tax, engineConfig(cfg.Engine), cache.NewMemory())
	if err != nil {
		return nil, err
	}

	batch := rank.NewBatch(cfg.Batch.Workers, cfg.Batch.ItemTimeout, logger)
	ext := extractor.NewLocal()

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	var (
		results  repository.MatchResultRepository
		analyses repository.AnalysisRepository
	)
	if db != nil {
		results = repository.NewPostgresMatchResultRepository(db)
		analyses = repository.NewPostgresAnalysisRepository(db)
	}

	var rankCache usecase.RankCache
	if redis != nil {
		rankCache = redis
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Redis:   redis,
		Engine:  engine,
		Batch:   batch,
		Hub:     hub,
		Analyze: usecase.NewAnalyzeUsecase(engine, ext, analyses, logger),
		Match:   usecase.NewMatchUsecase(engine, ext, results, logger),
		Rank:    usecase.NewRankUsecase(engine, batch, ext, results, rankCache, cache.DefaultTTLFromEnv(), notifier, logger),
		Report:  usecase.NewReportUsecase(results, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func loadTaxonomy(cfg config.EngineConfig, logger *log.Logger) (*taxonomy.Taxonomy, error) {
	if strings.TrimSpace(cfg.TaxonomyFile) == "" {
		return taxonomy.Default(), nil
	}

	tax, err := taxonomy.LoadFile(cfg.TaxonomyFile)
	if err != nil {
		return nil, err
	}
	logger.Printf("Taxonomy loaded | file=%s skills=%d", cfg.TaxonomyFile, tax.Len())
	return tax, nil
}

func engineConfig(cfg config.EngineConfig) matching.Config {
	out := matching.DefaultConfig()
	out.Weights = matching.Weights{
		Similarity: cfg.WeightSimilarity,
		Keyword:    cfg.WeightKeyword,
		Experience: cfg.WeightExperience,
	}
	out.FullScoreYears = cfg.FullScoreYears
	out.RecencyHalfLifeYears = cfg.RecencyHalfLifeYears
	out.BreadthSaturation = cfg.BreadthSaturation
	return out
}
