// Package publish writes a built site to its destination. It is the
// engine behind "weft publish": Dir writes rendered pages into a local
// output directory, S3 uploads a built directory to an S3 bucket.
//
// # Usage
//
//	client := s3.NewFromConfig(cfg)
//	pub, err := publish.NewS3(client, "my-bucket",
//	    publish.WithPrefix("site"),
//	    publish.WithPrune(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := pub.Upload(ctx, "dist")
//
// Upload walks the directory, uploads every file under the configured
// key prefix with a content type derived from its extension, and, when
// pruning is enabled, deletes remote keys that no longer exist locally.
package publish
