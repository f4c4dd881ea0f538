package main

import (
	"context"
	"fmt"
	"time"

	"github.com/trezcool/solvo/core/health"
)

// health probes url with the configured retry policy.
func (cli *commandLine) health(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := health.NewProber(cli.client, url, cli.policy).Check(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (%s)\n", st.Status, st.Timestamp.Format(time.RFC3339))
	return nil
}
