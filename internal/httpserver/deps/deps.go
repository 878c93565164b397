package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/casefolio/casefolio/internal/catalog"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/moderation"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed on admin endpoints
	AdminCIDRS   []string         // IPs allowed on admin endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RedisClient  *redis.Client    // optional feed-state cache connection (nil = disabled)
	Catalog      *catalog.Catalog // in-memory record set
	Moderation   *moderation.Engine
	CheckTrigger chan struct{} // channel to trigger a manual feed check
	SubmitBurst  int           // rate limit burst for community submissions
	SubmitPerMin int           // sustained submissions per minute per client
}
