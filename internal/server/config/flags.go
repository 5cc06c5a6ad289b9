package config

import (
	"flag"
	"os"
	"time"

	"github.com/avolkov/dogshelter/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-q string   task-queue broker address (redis host:port)
//	-r string   status-store address (redis host:port)
//	-i int      staging interval, seconds
//	-m string   random-image service URL
//	-u string   file-upload target URL
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers and converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-q", "-r", "-i", "-m", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	stagingInterval := fs.Int("i", int(config.StagingInterval.Seconds()), "staging interval (in seconds)")

	fs.StringVar(&config.BrokerAddr, "q", config.BrokerAddr, "task queue broker address")
	fs.StringVar(&config.StatusAddr, "r", config.StatusAddr, "status store address")
	fs.StringVar(&config.RandomImageURL, "m", config.RandomImageURL, "random image service URL")
	fs.StringVar(&config.UploadURL, "u", config.UploadURL, "file upload target URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.StagingInterval = time.Duration(*stagingInterval) * time.Second
}
