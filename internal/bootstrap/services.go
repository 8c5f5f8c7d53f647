package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/anstylian/petclinic/config"
	redisadapter "github.com/anstylian/petclinic/internal/adapters/redis"
	"github.com/anstylian/petclinic/internal/data"
	"github.com/anstylian/petclinic/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth *service.AuthService
	Pets *service.PetService
	Vets *service.VetService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires data adapters into the service layer.
func BuildServices(deps ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessions := redisadapter.NewSessionStore(redisadapter.SessionStoreOptions{
		Client: deps.RedisClient,
		TTL:    deps.Config.Session.Timeout(),
		Logger: logger,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Credentials: data.NewUserRepo(deps.DB),
		Verifier:    service.SHA1Verifier{},
		Sessions:    sessions,
		Logger:      logger,
	})

	return ServiceContainer{
		Auth: auth,
		Pets: service.NewPetService(data.NewPetRepo(deps.DB), logger),
		Vets: service.NewVetService(data.NewVetRepo(deps.DB), logger),
	}
}
