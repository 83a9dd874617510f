package constant

type contextKey string

// ActorKey carries the authenticated username extracted from a verified
// bearer token. Services read it for audit stamping, never from any
// ambient session state.
const ActorKey contextKey = "actor"
