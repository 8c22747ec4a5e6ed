//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"station-booking/cmd/bootstrap"
	"station-booking/cmd/bootstrap/components"
	"station-booking/internal/infra/db"
	"station-booking/internal/infra/mq"
	"station-booking/internal/pkg/config"
	"station-booking/internal/usecase/shared"
	"station-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgStartErr  error
)

// tuned for throwaway data: durability off, data dir in RAM
var pgFlags = map[string]string{
	"fsync":              "off",
	"full_page_writes":   "off",
	"synchronous_commit": "off",
	"shared_buffers":     "256MB",
	"max_connections":    "200",
	"log_statement":      "none",
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// postgresContainer starts one container per test process and shares it between suites.
// Ryuk removes it when the process exits.
func postgresContainer(t *testing.T) testcontainers.Container {
	pgOnce.Do(func() {
		cmd := []string{"postgres"}
		for k, v := range pgFlags {
			cmd = append(cmd, "-c", k+"="+v)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs:      map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd:        cmd,
				WaitingFor: wait.ForSQL(pgPort, "pgx", adminDSN).WithStartupTimeout(time.Minute),
				Labels:     map[string]string{"purpose": "station-booking-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgStartErr, "PostgreSQLコンテナの起動に失敗")
	return pgContainer
}

func endpoint(t *testing.T, c testcontainers.Container) (string, nat.Port) {
	ctx := context.Background()
	host, err := c.Host(ctx)
	require.NoError(t, err, "コンテナホストの取得に失敗")
	port, err := c.MappedPort(ctx, pgPort)
	require.NoError(t, err, "コンテナポートの取得に失敗")
	return host, port
}

// createDatabase makes a fresh database per suite so suites never share rows.
func createDatabase(t *testing.T, host string, port nat.Port) string {
	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// CREATE DATABASE fails while another session is copying template1
	backoff := 250 * time.Millisecond
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error(), "retry_wait", backoff)
		time.Sleep(backoff)
		backoff *= 2
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})
	return name
}

// migrationsDir walks up from the package directory until it finds the repo's migrations.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(f), err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
		slog.Debug("マイグレーション実行完了", "file", filepath.Base(f))
	}
	return nil
}

func prepareDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	host, port := endpoint(t, postgresContainer(t))

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   createDatabase(t, host, port),
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, _, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, migrate(ctx, pool), "データベースマイグレーションに失敗")
	return pool, dbConfig
}

// startApp wires the production modules around the test pool. The broker is replaced by a no-op publisher.
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	var (
		router *gin.Engine
		cfg    config.Config
	)

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbConfig
				return c
			},
			func() shared.EventPublisher { return mq.NoopPublisher{} },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, cfg
}

// SharedSuite gives each e2e suite its own database and a fully wired router.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := prepareDatabase(t)
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbConfig)

	slog.Info("E2E環境の準備が完了しました", "database", dbConfig.DBName)
}

// SetupSubTest truncates every table so subtests start from an empty store.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースのリセットに失敗")
}
