// Package notely is the Composition Root for the notely client.
//
// It connects the client-side stores (session, notes, route guard) with the
// infrastructure adapters (HTTP API client, session storage) and exposes
// them as a single App.
//
// Philosophy:
//
// notely is a thin client. The remote notes service is the source of truth;
// the only thing kept locally is the bearer token, in a YAML file under the
// state directory. Every component is an explicit object, so tests and
// embedding programs can build as many independent Apps as they need.
//
// Features:
//
//   - **Auth Session**: Login, registration and logout with the token kept in
//     memory and on disk in lockstep.
//   - **Notes Store**: Fetch, create, update and delete with runtime shape
//     checks on every server answer.
//   - **Route Guard**: Unauthenticated navigation to a protected route lands
//     on `/login`.
//   - **Pluggable**: Swap the storage or the API through `WithStorage` and
//     `WithAPI`.
//
// Usage:
//
//	app, err := notely.New(ctx,
//		notely.WithBaseURL("http://localhost:3000/"),
//		notely.WithLogger(logger),
//	)
//
//	res := app.Session.Login(ctx, notely.LoginCredentials{Email: "a@b.com", Password: "x"})
//	if !res.Success {
//		return errors.New(res.Message)
//	}
//	app.Notes.Fetch(ctx)
package notely
