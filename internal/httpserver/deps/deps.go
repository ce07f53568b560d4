package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/moviedb/internal/catalog"
	"github.com/MrSnakeDoc/moviedb/internal/form"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	AllowedHosts    []string       // Host headers allowed to access the server
	AllowedCIDRS    []string       // IPs allowed to access healthz/readyz/infra endpoints
	TrustProxy      bool           // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins     []string       // browser origins allowed on /api
	RateLimitBurst  int            // per-IP burst on form mutations
	RateLimitPerMin int            // per-IP refill per minute on form mutations
	Catalog         *catalog.Store // the movie catalog
	Form            *form.Form     // the create-movie form
	SeedSource      string         // where the catalog was seeded from ("redis" | "file")
	RedisClient     *redis.Client  // nil when Redis is not configured
}
