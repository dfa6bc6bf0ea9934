package domain

// Unsubscribe releases a live query. Implementations block until no further
// callbacks will be delivered and are safe to call more than once.
type Unsubscribe func()

// ItemsSnapshotFunc receives the full result set of the items query.
type ItemsSnapshotFunc func(docs []ItemDoc)

// MessagesSnapshotFunc receives the full result set of a room's messages query.
type MessagesSnapshotFunc func(msgs []Message)

// ListenErrorFunc is called once when a live query fails after setup.
// No further snapshots are delivered for that query.
type ListenErrorFunc func(err error)
