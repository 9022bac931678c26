// Package publish renders documents and stores the HTML.
//
// A Publisher renders a tree with the render driver and hands the bytes to
// a Store. Two stores are provided:
//
//   - S3Store uploads to a bucket with PutObject
//   - DiskStore writes into a local directory
//
// Documents are only stored once they rendered completely. With WithGzip
// the body is gzip-compressed and stored with Content-Encoding: gzip.
//
// # Usage
//
//	store := publish.NewS3Store(publish.NewS3Client(cfg.Publish), cfg.Publish.Bucket, cfg.Publish.Prefix)
//	p := publish.New(store, publish.WithGzip(true))
//
//	result, err := p.Publish(ctx, "guides/index.html", page)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Location) // s3://bucket/prefix/guides/index.html
//
// An empty key publishes under a random name ending in ".html".
package publish
