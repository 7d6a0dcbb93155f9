package main

// General API documentation for swaggo. Run `swag init -g cmd/flyfund/docs.go` to regenerate docs.
//
// @title           flyfund local inference API
// @version         0.1.0
// @description     HTTP API for local GGUF model management and streamed generation.
//
// @contact.name   flyfund maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
