package memcache_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	mem "voyago/pkg/memcache"
)

const defaultPlanTTLMinutes = 30

var Module = fx.Provide(providePlanStore)

func providePlanStore() *mem.PlanStore {
	ttlMinutes := defaultPlanTTLMinutes
	if raw := os.Getenv("PLAN_CACHE_TTL_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Printf("Invalid PLAN_CACHE_TTL_MINUTES %q, using default %d", raw, defaultPlanTTLMinutes)
		} else {
			ttlMinutes = parsed
		}
	}
	return mem.NewPlanStore(time.Duration(ttlMinutes) * time.Minute)
}
