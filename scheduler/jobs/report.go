package jobs

import (
	"context"
	"log"
	"tftstats/pkg/config"
	"tftstats/pkg/report"
	"time"
)

// Upper bound of a single report pass.
const reportTimeout = 2 * time.Hour

// RunReport executes a report pass for every configured scope.
func RunReport(cfg *config.Config, scopes []string) error {
	for _, scope := range scopes {
		log.Printf("Starting the %s report", scope)

		scopedCfg := *cfg
		scopedCfg.Report.Scope = scope

		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		summary, err := report.RunPass(ctx, &scopedCfg)
		cancel()
		if err != nil {
			log.Printf("Error running the %s report: %v", scope, err)
			continue
		}

		log.Printf("The %s report completed successfully, %d matches parsed", scope, summary.Parsed)
	}

	return nil
}
