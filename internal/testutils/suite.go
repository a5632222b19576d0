package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"football-data-backend/internal/config"
	"football-data-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// leagueTables lists every table truncated between tests
var leagueTables = []string{
	"players",
	"standings",
	"matches",
	"teams",
}

// sharedPostgres is the one container every integration suite in a test
// binary connects to
type sharedPostgres struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared sharedPostgres

// BaseTestSuite hands a suite the shared store and the matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and
// returns a wrapper around it. The schema is already bootstrapped.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{
		DB:     shared.db,
		Config: shared.cfg,
	}
}

// CleanupSharedContainer closes the store and purges the container.
// Integration packages call it from TestMain once m.Run returns.
func CleanupSharedContainer() {
	if err := database.Close(shared.db); err != nil {
		log.Printf("WARN: closing shared store: %v", err)
	}
	shared.db = nil

	if shared.pool == nil || shared.resource == nil {
		return
	}
	log.Printf("Purging Postgres container %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge Postgres container: %v", err)
	}
	shared.resource = nil
	shared.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the league tables and resets their id sequences
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range leagueTables {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
}

func (p *sharedPostgres) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	p.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	p.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error { return p.connect(dsn) }); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	p.cfg = &config.Config{
		DatabaseURL:        dsn,
		Port:               "8080",
		LogLevel:           "debug",
		Environment:        "test",
		StoreFailOpen:      false,
		PayPalClientID:     "test-client-id",
		PayPalClientSecret: "test-client-secret",
		PayPalMode:         config.PayPalModeSandbox,
	}

	log.Printf("Shared Postgres ready on port %s", port)
	return nil
}

// connect pings with the plain pgx driver first so gorm only opens once the
// server accepts connections
func (p *sharedPostgres) connect(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := std.PingContext(ctx); err != nil {
		return err
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	if err := database.Ping(ctx, db); err != nil {
		_ = database.Close(db)
		return err
	}
	p.db = db
	return nil
}
