// Package proto holds the wire definitions. Generated code lands in
// account/ and messaging/ and is not committed.
//
//go:generate protoc --go_out=.. --go_opt=module=courier --go-grpc_out=.. --go-grpc_opt=module=courier account.proto messaging.proto
package proto
