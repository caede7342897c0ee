// Package gym holds the OpenAPI document served at /swagger/. Regenerate it
// after changing handler annotations.
package gym

//go:generate go run github.com/swaggo/swag/cmd/swag init --generalInfo router.go --dir ../../internal/gym/http,../../pkg/gymsdk --output . --outputTypes go,json --packageName gym
