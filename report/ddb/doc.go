// Package ddb publishes report entries to a DynamoDB table.
//
// Table schema:
//   - Partition key: asn (number)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name primeasn \
//	  --attribute-definitions AttributeName=asn,AttributeType=N \
//	  --key-schema AttributeName=asn,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
//
// Publishing the same AS number again overwrites its item, so the table
// always reflects the most recent run that saw it.
package ddb
