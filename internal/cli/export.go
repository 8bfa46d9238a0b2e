package cli

import (
	"context"
	"fmt"

	"github.com/opio/bpmonitor/internal/common"
)

// Export uploads the reading history when a bucket is configured.
func (a *App) Export(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}
	if a.exporter == nil {
		fmt.Fprintln(a.out, "Export is not configured (set -b or s3_bucket).")
		return nil
	}

	key, err := a.exporter.Export(a.requestContext(ctx))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "History exported to %s/%s\n", a.config.S3Bucket, key)
	return nil
}
