package config

import (
	"flag"
	"os"

	"github.com/telepay/receiptbot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address for the webhook server (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-t string   Telegram bot token
//	-w string   public webhook host (empty switches to long polling)
//	-o string   downloads directory for scoped artifacts
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-w", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run webhook server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Token, "t", config.Token, "telegram bot token")
	fs.StringVar(&config.WebhookHost, "w", config.WebhookHost, "public webhook host")
	fs.StringVar(&config.DownloadsDir, "o", config.DownloadsDir, "downloads directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
