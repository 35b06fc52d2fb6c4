// Package service contains the business logic of the Yookve API.
//
// Services sit between HTTP handlers and repositories. Each service
// depends on small repository interfaces defined alongside it, returns
// the sentinel errors from errors.go, and never touches the HTTP layer
// directly. Handlers translate sentinels into API error responses.
package service
