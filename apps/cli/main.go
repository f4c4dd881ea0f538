package main

import (
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/health"
)

func main() {
	logger := log.New(os.Stderr, "CLI : ", log.LstdFlags)

	conf, err := core.NewConfig()
	if err != nil {
		logger.Fatal(err)
	}

	cli := commandLine{
		client:    &http.Client{Timeout: conf.Health.Timeout},
		out:       os.Stdout,
		apiURL:    apiURL(conf.Health.URL),
		healthURL: conf.Health.URL,
		policy: health.Policy{
			Attempts:    conf.Health.Attempts,
			Interval:    conf.Health.Interval,
			MaxInterval: conf.Health.MaxInterval,
			Timeout:     conf.Health.Timeout,
		},
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %s\n", err)
		}
		os.Exit(1)
	}
}

// apiURL returns the scheme & host of the health endpoint.
func apiURL(healthURL string) string {
	u, err := url.Parse(healthURL)
	if err != nil || u.Host == "" {
		return "http://localhost:3000"
	}
	return u.Scheme + "://" + u.Host
}
