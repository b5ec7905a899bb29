// Package proto holds the wire contract for the model sidecar. Run
// `go generate ./proto` after editing llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
