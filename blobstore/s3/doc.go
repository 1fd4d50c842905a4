// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "rir-mirror",
//	    s3.WithPrefix("delegated/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	blob, err := store.Open(ctx, "delegated-ripencc-extended-20211122.bz2")
//
// Credentials and region resolve through the default AWS configuration chain
// (environment, shared config, IMDS). Writes go through the s3 manager
// uploader, so large reports are sent as multipart uploads.
package s3
