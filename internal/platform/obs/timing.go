package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration of an operation when the returned func runs,
// including the error (if any) the operation finished with:
//
//	defer obs.Time(ctx, "stations.sql.ListStations")(&err)
func Time(_ context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
