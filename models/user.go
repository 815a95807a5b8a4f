package models

// DefaultUserID owns my-list entries when no explicit profile is given.
// The service is effectively single-user today; the id is threaded through
// so multi-profile support stays a storage change, not an API change.
const DefaultUserID = "default"
