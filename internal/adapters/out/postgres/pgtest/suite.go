// Package pgtest starts a throwaway postgres for repository integration
// suites and migrates the storefront schema into it.
package pgtest

import (
	"context"
	"strings"
	"time"

	"storefront/internal/adapters/out/postgres"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Suite is embedded by integration suites. A suite that defines its own
// SetupSuite must call Suite.SetupSuite first.
type Suite struct {
	suite.Suite
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

func (s *Suite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.Container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.DB = db

	s.Require().NoError(postgres.Migrate(db))
}

func (s *Suite) TearDownSuite() {
	if s.Container != nil {
		s.Require().NoError(s.Container.Terminate(context.Background()))
	}
}

// Truncate empties the given tables.
func (s *Suite) Truncate(tables ...string) {
	s.Require().NoError(s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE").Error)
}

// TruncateAll empties every storefront table.
func (s *Suite) TruncateAll() {
	s.Truncate(postgres.Tables()...)
}
