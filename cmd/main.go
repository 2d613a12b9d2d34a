package main

import (
	"fmt"
	"log"
	"os"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/commands"
	"timeclock/backend/internal/pkg/config"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("main: error:", err)
	}
}

func run() error {
	var settings struct {
		Web struct {
			Port string `conf:"default::8080"`
		}
		Media struct {
			Dir string `conf:"default:media"`
		}
	}

	if err := conf.Parse(os.Args[1:], "TIMECLOCK", &settings); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("TIMECLOCK", &settings)
			if err != nil {
				return fmt.Errorf("generating usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		}
		return fmt.Errorf("parsing settings: %w", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	postgresDB := postgresql.NewDB(cfg)
	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := os.MkdirAll(settings.Media.Dir, 0o755); err != nil {
		return fmt.Errorf("creating media dir: %w", err)
	}

	authenticator := auth.New(cfg.JWTKey)

	r := router.NewRouter(
		web.NewApp(),
		postgresDB,
		redisDB,
		settings.Web.Port,
		authenticator,
		cfg.JWTKey,
		cfg.BaseUrl,
	)

	return r.Init()
}
