package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/repository"
	"github.com/Chodoro/psusphere/internal/seed"
	"github.com/Chodoro/psusphere/internal/service"
	"github.com/Chodoro/psusphere/pkg/cache"
	"github.com/Chodoro/psusphere/pkg/config"
	"github.com/Chodoro/psusphere/pkg/database"
	"github.com/Chodoro/psusphere/pkg/logger"
)

// app holds the process-wide dependencies every command starts from.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *sqlx.DB
	redis   *redis.Client
	metrics *service.MetricsService
}

type services struct {
	colleges      *service.CollegeService
	programs      *service.ProgramService
	students      *service.StudentService
	organizations *service.OrganizationService
	members       *service.OrgMemberService
	auth          *service.AuthService
	home          *service.HomeService
	exports       *service.ExportService
}

// bootstrap loads configuration, builds the logger and opens the database.
// Redis is only dialled when caching is enabled; a failed dial disables the
// cache instead of aborting.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	a := &app{cfg: cfg, logger: logr, db: db, metrics: service.NewMetricsService()}

	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, list cache disabled", zap.Error(err))
		} else {
			a.redis = client
		}
	}

	return a, nil
}

func (a *app) migrate() error {
	if !a.cfg.Database.AutoMigrate {
		return nil
	}
	if err := database.MigrateUp(a.cfg.Database.URL()); err != nil {
		return err
	}
	a.logger.Info("database schema up to date")
	return nil
}

func (a *app) services() services {
	validate := service.NewValidator()

	cacheSvc := service.NewCacheService(
		repository.NewCacheRepository(a.redis, a.logger),
		a.metrics,
		a.cfg.Cache.TTL,
		a.logger,
		a.cfg.Cache.Enabled && a.redis != nil,
	)
	hooks := service.Hooks{Cache: cacheSvc, Metrics: a.metrics}

	collegeRepo := repository.NewCollegeRepository(a.db)
	programRepo := repository.NewProgramRepository(a.db)
	studentRepo := repository.NewStudentRepository(a.db)
	organizationRepo := repository.NewOrganizationRepository(a.db)
	memberRepo := repository.NewOrgMemberRepository(a.db)

	s := services{
		colleges:      service.NewCollegeService(collegeRepo, validate, a.logger, hooks),
		programs:      service.NewProgramService(programRepo, collegeRepo, validate, a.logger, hooks),
		students:      service.NewStudentService(studentRepo, programRepo, validate, a.logger, hooks),
		organizations: service.NewOrganizationService(organizationRepo, collegeRepo, validate, a.logger, hooks),
		members:       service.NewOrgMemberService(memberRepo, studentRepo, organizationRepo, validate, a.logger, hooks),
		auth: service.NewAuthService(repository.NewUserRepository(a.db), validate, a.logger, service.AuthConfig{
			SessionSecret: a.cfg.Session.Secret,
			SessionTTL:    a.cfg.Session.TTL,
			Issuer:        a.cfg.Session.Issuer,
		}),
	}

	catalog := service.NewCatalog(s.colleges, s.programs, s.students, s.organizations, s.members)
	s.home = service.NewHomeService(catalog, a.logger)
	s.exports = service.NewExportService(catalog, a.logger)
	return s
}

func (s services) seedServices() seed.Services {
	return seed.Services{
		Colleges:      s.colleges,
		Programs:      s.programs,
		Students:      s.students,
		Organizations: s.organizations,
		OrgMembers:    s.members,
	}
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
	_ = a.logger.Sync()
}
