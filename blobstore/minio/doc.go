// Package minio provides a blobstore.Store for MinIO and other S3-compatible services.
//
//	store, err := minio.New("localhost:9000", "rir-mirror",
//	    minio.WithCredentials(accessKey, secretKey),
//	    minio.WithPrefix("delegated/"),
//	)
package minio
