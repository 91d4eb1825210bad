package di

import (
	"gorm.io/gorm"

	"tasks-api/application/serviceimpl"
	"tasks-api/domain/ports"
	"tasks-api/domain/repositories"
	"tasks-api/domain/services"
	"tasks-api/infrastructure/postgres"
	redispkg "tasks-api/infrastructure/redis"
	"tasks-api/pkg/config"
	"tasks-api/pkg/logger"
	"tasks-api/pkg/scheduler"
	"tasks-api/pkg/token"
)

type Container struct {
	Config *config.Config

	DB             *gorm.DB
	RedisClient    *redispkg.Client // nil when REDIS_URL is unset
	TokenManager   *token.Manager
	EventScheduler scheduler.EventScheduler

	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	UserService      services.UserService
	TaskService      services.TaskService
	RetentionService *serviceimpl.TaskRetentionService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Redis is optional. Without it, cached lookups hit the database.
	if c.Config.Redis.URL != "" {
		client, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			c.RedisClient = client
		}
	}

	c.TokenManager = token.NewManager(token.Config{
		Secret: c.Config.JWT.Secret,
		TTL:    c.Config.JWT.TTL,
	})

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	var cache ports.Cache
	if c.RedisClient != nil {
		cache = c.RedisClient
	}

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TokenManager)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, cache)
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	c.RetentionService = serviceimpl.NewTaskRetentionService(
		serviceimpl.TaskRetentionConfig{
			PurgeCron: c.Config.Retention.PurgeCron,
			MaxAge:    c.Config.Retention.MaxAge,
		},
		c.TaskRepository,
		c.EventScheduler,
	)

	if err := c.RetentionService.RegisterPurgeJob(); err != nil {
		return err
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
