package testutils

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite initializes (once) the shared Postgres container and returns a per-suite wrapper.
// Call this in your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer closes the shared connection and purges the
// container. Integration packages call it from their TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	name := sharedResource.Container.Name
	if err := sharedPool.Purge(sharedResource); err != nil {
		logrus.WithError(err).WithField("container", name).Warn("Could not purge test container")
	} else {
		logrus.WithField("container", name).Debug("Purged test container")
	}
	sharedResource = nil
	sharedPool = nil
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean DB here;
// Docker container persists across suites for speed.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// Persist inserts the given records in order, failing the test on error
func (s *BaseTestSuite) Persist(t *testing.T, records ...interface{}) {
	t.Helper()
	for _, r := range records {
		if err := s.DB.Create(r).Error; err != nil {
			t.Fatalf("persist %T: %v", r, err)
		}
	}
}

// CleanTestDB truncates the domain tables children first and resets their sequences.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"coachings",
		"team_members",
		"teams",
		"users",
	}
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica;`)
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

// pgCredentials describes the throwaway database inside the container
type pgCredentials struct {
	user, password, name string
}

var testCredentials = pgCredentials{user: "coach", password: "coachpass", name: "coaching_test"}

func (c pgCredentials) env() []string {
	return []string{
		"POSTGRES_USER=" + c.user,
		"POSTGRES_PASSWORD=" + c.password,
		"POSTGRES_DB=" + c.name,
	}
}

func (c pgCredentials) url(port string) string {
	return fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", c.user, c.password, port, c.name)
}

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env:        testCredentials.env(),
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := testCredentials.url(port)

	// wait until the server accepts connections
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	gdb, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = gdb

	sharedConfig = &config.Config{
		DatabaseURL:          dsn,
		Port:                 "8080",
		LogLevel:             "debug",
		Environment:          "test",
		Timezone:             "Europe/Berlin",
		PerformanceBenchmark: 80,
		PageSize:             10,
		ArchiveTeamName:      "ARCHIV",
	}

	logrus.WithField("port", port).Info("Shared Postgres ready")
	logExistingTables(sharedDB)
	return nil
}

// logExistingTables lists public tables after init
func logExistingTables(db *gorm.DB) {
	type row struct{ Tablename string }
	var rows []row
	if err := db.Raw(
		`SELECT tablename FROM pg_tables WHERE schemaname='public' ORDER BY tablename`,
	).Scan(&rows).Error; err == nil {
		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.Tablename)
		}
		logrus.WithField("tables", names).Debug("Public tables")
	}
}
