// Package middleware groups the Fiber middleware used by the start command.
//
//   - rayid tags every request with an id, stored in the context under
//     logger.RayIDKey and echoed in the X-Ray-ID response header.
//   - auth checks the configured API key on the API routes.
package middleware
