package config

import (
	"flag"
	"os"
	"time"

	"github.com/avasiljevs/learnkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-s string   secret for at-rest encryption of the session store
//	-g string   secret for signing entitlement grants
//	-t int      entitlement grant validity in hours
//	-l int      simulated login latency in milliseconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-g", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.StoreSecret, "s", cfg.StoreSecret, "secret for session store encryption")
	fs.StringVar(&cfg.GrantSecret, "g", cfg.GrantSecret, "secret for entitlement grants")
	grantTTL := fs.Int("t", int(cfg.GrantTTL.Hours()), "entitlement grant validity (in hours)")
	loginDelay := fs.Int("l", int(cfg.LoginDelay.Milliseconds()), "simulated login latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.GrantTTL = time.Duration(*grantTTL) * time.Hour
	cfg.LoginDelay = time.Duration(*loginDelay) * time.Millisecond
}
